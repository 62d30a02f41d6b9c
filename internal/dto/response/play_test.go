package response

import (
	"testing"
	"time"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func samplePlay() (*entity.Play, []*entity.Actor, []*entity.Genre) {
	now := time.Now()

	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "The Cherry Orchard",
		Description: "An estate changes hands",
	}

	actors := []*entity.Actor{
		{
			Base:      entity.Base{ID: uuid.New()},
			FirstName: "Alisa",
			LastName:  "Freindlich",
		},
	}

	genres := []*entity.Genre{
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			Name:       "Drama",
		},
	}

	return play, actors, genres
}

func TestPlayToListResponseFlattensNames(t *testing.T) {
	play, actors, genres := samplePlay()

	resp := PlayToListResponse(play, actors, genres)

	assert.Equal(t, play.ID.String(), resp.ID)
	assert.Equal(t, "The Cherry Orchard", resp.Title)
	assert.Equal(t, []string{"Alisa Freindlich"}, resp.Actors)
	assert.Equal(t, []string{"Drama"}, resp.Genres)
}

func TestPlayToDetailResponseNestsObjects(t *testing.T) {
	play, actors, genres := samplePlay()

	resp := PlayToDetailResponse(play, actors, genres)

	assert.Equal(t, play.ID.String(), resp.ID)
	assert.Len(t, resp.Actors, 1)
	assert.Equal(t, actors[0].ID.String(), resp.Actors[0].ID)
	assert.Equal(t, "Alisa", resp.Actors[0].FirstName)
	assert.Equal(t, "Alisa Freindlich", resp.Actors[0].FullName)
	assert.Len(t, resp.Genres, 1)
	assert.Equal(t, genres[0].ID.String(), resp.Genres[0].ID)
	assert.Equal(t, "Drama", resp.Genres[0].Name)
	assert.Equal(t, play.CreatedAt, resp.CreatedAt)
}

func TestPlayToListResponseNoAssociations(t *testing.T) {
	play, _, _ := samplePlay()

	resp := PlayToListResponse(play, nil, nil)

	assert.Empty(t, resp.Actors)
	assert.Empty(t, resp.Genres)
}
