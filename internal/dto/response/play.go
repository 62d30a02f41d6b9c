package response

import (
	"time"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
)

// PlayListResponse is the listing shape: related actors and genres are
// flattened to name strings, never nested objects.
type PlayListResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actors      []string `json:"actors"`
	Genres      []string `json:"genres"`
}

// PlayDetailResponse expands every association into the full nested object
type PlayDetailResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Actors      []ActorResponse `json:"actors"`
	Genres      []GenreResponse `json:"genres"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func PlayToListResponse(play *entity.Play, actors []*entity.Actor, genres []*entity.Genre) PlayListResponse {
	actorNames := make([]string, len(actors))
	for i, actor := range actors {
		actorNames[i] = actor.FullName()
	}

	genreNames := make([]string, len(genres))
	for i, genre := range genres {
		genreNames[i] = genre.Name
	}

	return PlayListResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Actors:      actorNames,
		Genres:      genreNames,
	}
}

func PlayToDetailResponse(play *entity.Play, actors []*entity.Actor, genres []*entity.Genre) PlayDetailResponse {
	actorResponses := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = ActorToResponse(actor)
	}

	genreResponses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = GenreToResponse(genre)
	}

	return PlayDetailResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Actors:      actorResponses,
		Genres:      genreResponses,
		CreatedAt:   play.CreatedAt,
		UpdatedAt:   play.UpdatedAt,
	}
}
