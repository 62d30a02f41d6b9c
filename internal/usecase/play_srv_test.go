package usecase

import (
	"context"
	"testing"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory fakes standing in for the pgx-backed repositories.

type fakeActorRepo struct {
	actors map[uuid.UUID]*entity.Actor
	byPlay map[uuid.UUID][]*entity.Actor
}

func (f *fakeActorRepo) Create(ctx context.Context, actor *entity.Actor) error {
	f.actors[actor.ID] = actor
	return nil
}

func (f *fakeActorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	return f.actors[id], nil
}

func (f *fakeActorRepo) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, a := range f.actors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActorRepo) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	return f.byPlay[playID], nil
}

type fakeGenreRepo struct {
	genres map[uuid.UUID]*entity.Genre
	byPlay map[uuid.UUID][]*entity.Genre
}

func (f *fakeGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	f.genres[genre.ID] = genre
	return nil
}

func (f *fakeGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	return f.genres[id], nil
}

func (f *fakeGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, g := range f.genres {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreRepo) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Genre, error) {
	return f.byPlay[playID], nil
}

type fakePlayRepo struct {
	plays      map[uuid.UUID]*entity.Play
	actorLinks map[uuid.UUID][]uuid.UUID
	genreLinks map[uuid.UUID][]uuid.UUID
	lastFilter request.PlayFilter
}

func newFakePlayRepo() *fakePlayRepo {
	return &fakePlayRepo{
		plays:      make(map[uuid.UUID]*entity.Play),
		actorLinks: make(map[uuid.UUID][]uuid.UUID),
		genreLinks: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakePlayRepo) CreateWithRelations(ctx context.Context, play *entity.Play, actorIDs, genreIDs []uuid.UUID) error {
	f.plays[play.ID] = play
	f.actorLinks[play.ID] = actorIDs
	f.genreLinks[play.ID] = genreIDs
	return nil
}

func (f *fakePlayRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	return f.plays[id], nil
}

func (f *fakePlayRepo) FindAll(ctx context.Context, actorIDs, genreIDs []uuid.UUID) ([]*entity.Play, error) {
	f.lastFilter = request.PlayFilter{ActorIDs: actorIDs, GenreIDs: genreIDs}
	var out []*entity.Play
	for _, p := range f.plays {
		out = append(out, p)
	}
	return out, nil
}

// fakePlayActorRepo honors the Add contract: an existing link is a no-op
type fakePlayActorRepo struct {
	links []*entity.PlayActor
}

func (f *fakePlayActorRepo) Add(ctx context.Context, playActor *entity.PlayActor) error {
	for _, l := range f.links {
		if l.PlayID == playActor.PlayID && l.ActorID == playActor.ActorID {
			return nil
		}
	}
	f.links = append(f.links, playActor)
	return nil
}

func (f *fakePlayActorRepo) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayActor, error) {
	var out []*entity.PlayActor
	for _, l := range f.links {
		if l.PlayID == playID {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakePlayGenreRepo honors the Add contract: an existing link is a no-op
type fakePlayGenreRepo struct {
	links []*entity.PlayGenre
}

func (f *fakePlayGenreRepo) Add(ctx context.Context, playGenre *entity.PlayGenre) error {
	for _, l := range f.links {
		if l.PlayID == playGenre.PlayID && l.GenreID == playGenre.GenreID {
			return nil
		}
	}
	f.links = append(f.links, playGenre)
	return nil
}

func (f *fakePlayGenreRepo) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayGenre, error) {
	var out []*entity.PlayGenre
	for _, l := range f.links {
		if l.PlayID == playID {
			out = append(out, l)
		}
	}
	return out, nil
}

type playServiceFakes struct {
	plays      *fakePlayRepo
	actors     *fakeActorRepo
	genres     *fakeGenreRepo
	playActors *fakePlayActorRepo
	playGenres *fakePlayGenreRepo
}

func newPlayTestService() (PlayService, *playServiceFakes) {
	fakes := &playServiceFakes{
		plays: newFakePlayRepo(),
		actors: &fakeActorRepo{
			actors: make(map[uuid.UUID]*entity.Actor),
			byPlay: make(map[uuid.UUID][]*entity.Actor),
		},
		genres: &fakeGenreRepo{
			genres: make(map[uuid.UUID]*entity.Genre),
			byPlay: make(map[uuid.UUID][]*entity.Genre),
		},
		playActors: &fakePlayActorRepo{},
		playGenres: &fakePlayGenreRepo{},
	}

	repo := &repository.Repository{
		Actor:     fakes.actors,
		Genre:     fakes.genres,
		Play:      fakes.plays,
		PlayActor: fakes.playActors,
		PlayGenre: fakes.playGenres,
	}

	return NewPlayService(repo, zap.NewNop()), fakes
}

func seedActor(repo *fakeActorRepo, first, last string) *entity.Actor {
	actor := &entity.Actor{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: first,
		LastName:  last,
	}
	repo.actors[actor.ID] = actor
	return actor
}

func seedGenre(repo *fakeGenreRepo, name string) *entity.Genre {
	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       name,
	}
	repo.genres[genre.ID] = genre
	return genre
}

func TestCreatePlayWithUnknownActorPersistsNothing(t *testing.T) {
	service, fakes := newPlayTestService()
	genre := seedGenre(fakes.genres, "Comedy")

	req := &request.PlayRequest{
		Title:       "The Inspector General",
		Description: "A case of mistaken identity",
		Actors:      request.IDList{uuid.New().String()},
		Genres:      request.IDList{genre.ID.String()},
	}

	_, err := service.CreatePlay(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid actor reference")
	assert.Empty(t, fakes.plays.plays)
}

func TestCreatePlayWithUnknownGenrePersistsNothing(t *testing.T) {
	service, fakes := newPlayTestService()
	actor := seedActor(fakes.actors, "Oleg", "Tabakov")

	req := &request.PlayRequest{
		Title:       "The Seagull",
		Description: "Life at a lakeside estate",
		Actors:      request.IDList{actor.ID.String()},
		Genres:      request.IDList{uuid.New().String()},
	}

	_, err := service.CreatePlay(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid genre reference")
	assert.Empty(t, fakes.plays.plays)
}

func TestCreatePlayLinksAssociations(t *testing.T) {
	service, fakes := newPlayTestService()
	actor := seedActor(fakes.actors, "Oleg", "Tabakov")
	genre := seedGenre(fakes.genres, "Drama")

	req := &request.PlayRequest{
		Title:       "Uncle Vanya",
		Description: "Scenes from country life",
		Actors:      request.IDList{actor.ID.String()},
		Genres:      request.IDList{genre.ID.String()},
	}

	detail, err := service.CreatePlay(context.Background(), req)
	require.NoError(t, err)

	playID, err := uuid.Parse(detail.ID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{actor.ID}, fakes.plays.actorLinks[playID])
	assert.Equal(t, []uuid.UUID{genre.ID}, fakes.plays.genreLinks[playID])

	require.Len(t, detail.Actors, 1)
	assert.Equal(t, "Oleg Tabakov", detail.Actors[0].FullName)
	require.Len(t, detail.Genres, 1)
	assert.Equal(t, "Drama", detail.Genres[0].Name)
}

func TestCreatePlayCollapsesDuplicateIDs(t *testing.T) {
	service, fakes := newPlayTestService()
	actor := seedActor(fakes.actors, "Yevgeny", "Mironov")

	req := &request.PlayRequest{
		Title:       "The Idiot",
		Description: "After Dostoevsky",
		Actors:      request.IDList{actor.ID.String(), actor.ID.String()},
	}

	detail, err := service.CreatePlay(context.Background(), req)
	require.NoError(t, err)

	playID, err := uuid.Parse(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{actor.ID}, fakes.plays.actorLinks[playID])
}

func TestCreatePlayValidation(t *testing.T) {
	service, fakes := newPlayTestService()

	_, err := service.CreatePlay(context.Background(), &request.PlayRequest{
		Description: "No title here",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, fakes.plays.plays)
}

func TestGetPlayByIDNotFound(t *testing.T) {
	service, _ := newPlayTestService()

	_, err := service.GetPlayByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "play not found")

	// Malformed identities look the same as missing ones
	_, err = service.GetPlayByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "play not found")
}

func TestGetPlaysPassesFilterToStore(t *testing.T) {
	service, fakes := newPlayTestService()

	filter := request.PlayFilter{
		ActorIDs: []uuid.UUID{uuid.New()},
		GenreIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	_, err := service.GetPlays(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, fakes.plays.lastFilter)
}

func TestAddRelationsIdempotent(t *testing.T) {
	service, fakes := newPlayTestService()
	actor := seedActor(fakes.actors, "Chulpan", "Khamatova")
	genre := seedGenre(fakes.genres, "Tragedy")

	detail, err := service.CreatePlay(context.Background(), &request.PlayRequest{
		Title:       "Antigone",
		Description: "After Sophocles",
	})
	require.NoError(t, err)

	actorIDs := []uuid.UUID{actor.ID}
	genreIDs := []uuid.UUID{genre.ID}

	require.NoError(t, service.AddRelations(context.Background(), detail.ID, actorIDs, genreIDs))
	require.NoError(t, service.AddRelations(context.Background(), detail.ID, actorIDs, genreIDs))

	playID, err := uuid.Parse(detail.ID)
	require.NoError(t, err)

	// Re-adding an existing association leaves the set unchanged
	actorLinks, err := fakes.playActors.FindByPlayID(context.Background(), playID)
	require.NoError(t, err)
	require.Len(t, actorLinks, 1)
	assert.Equal(t, actor.ID, actorLinks[0].ActorID)

	genreLinks, err := fakes.playGenres.FindByPlayID(context.Background(), playID)
	require.NoError(t, err)
	require.Len(t, genreLinks, 1)
	assert.Equal(t, genre.ID, genreLinks[0].GenreID)
}

func TestAddRelationsUnknownPlay(t *testing.T) {
	service, fakes := newPlayTestService()
	actor := seedActor(fakes.actors, "Sergey", "Bezrukov")

	err := service.AddRelations(context.Background(), uuid.New().String(), []uuid.UUID{actor.ID}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "play not found")
	assert.Empty(t, fakes.playActors.links)
}
