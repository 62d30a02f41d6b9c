package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/internal/dto/request"
	"github.com/Roman28101/theatre-service-api/internal/dto/response"
	"github.com/Roman28101/theatre-service-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayService interface {
	GetPlays(ctx context.Context, filter request.PlayFilter) ([]response.PlayListResponse, error)
	GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error)
	CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayDetailResponse, error)

	// AddRelations grows an existing play's associations. Not exposed over
	// HTTP; used by internal tooling and tests.
	AddRelations(ctx context.Context, playID string, actorIDs, genreIDs []uuid.UUID) error
}

type playService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlayService(
	repo *repository.Repository,
	log *zap.Logger,
) PlayService {
	return &playService{
		repo: repo,
		log:  log.With(zap.String("service", "play")),
	}
}

func (s *playService) GetPlays(ctx context.Context, filter request.PlayFilter) ([]response.PlayListResponse, error) {
	plays, err := s.repo.Play.FindAll(ctx, filter.ActorIDs, filter.GenreIDs)
	if err != nil {
		s.log.Error("Failed to get plays",
			zap.Error(err),
			zap.Int("actor_filter", len(filter.ActorIDs)),
			zap.Int("genre_filter", len(filter.GenreIDs)),
		)
		return nil, fmt.Errorf("get plays: %w", err)
	}

	playResponses := make([]response.PlayListResponse, len(plays))
	for i, play := range plays {
		actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
		if err != nil {
			s.log.Error("Failed to get actors for play",
				zap.Error(err),
				zap.String("play_id", play.ID.String()),
			)
			return nil, fmt.Errorf("get play actors: %w", err)
		}

		genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
		if err != nil {
			s.log.Error("Failed to get genres for play",
				zap.Error(err),
				zap.String("play_id", play.ID.String()),
			)
			return nil, fmt.Errorf("get play genres: %w", err)
		}

		playResponses[i] = response.PlayToListResponse(play, actors, genres)
	}

	s.log.Info("Plays retrieved", zap.Int("count", len(plays)))

	return playResponses, nil
}

func (s *playService) GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		s.log.Warn("Invalid play ID format",
			zap.String("play_id", playID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("play not found")
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get play by ID",
			zap.Error(err),
			zap.String("play_id", playID),
		)
		return nil, fmt.Errorf("get play by id: %w", err)
	}

	if play == nil {
		return nil, fmt.Errorf("play not found")
	}

	actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to get actors for play",
			zap.Error(err),
			zap.String("play_id", playID),
		)
		return nil, fmt.Errorf("get play actors: %w", err)
	}

	genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to get genres for play",
			zap.Error(err),
			zap.String("play_id", playID),
		)
		return nil, fmt.Errorf("get play genres: %w", err)
	}

	detail := response.PlayToDetailResponse(play, actors, genres)
	return &detail, nil
}

func (s *playService) CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorIDs, err := req.Actors.UUIDs()
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}
	genreIDs, err := req.Genres.UUIDs()
	if err != nil {
		return nil, fmt.Errorf("invalid genre id: %w", err)
	}

	// Every referenced actor/genre must exist before anything is persisted
	actors, err := s.checkActors(ctx, actorIDs)
	if err != nil {
		return nil, err
	}
	genres, err := s.checkGenres(ctx, genreIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Play.CreateWithRelations(ctx, play, actorIDs, genreIDs); err != nil {
		s.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create play: %w", err)
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("title", play.Title),
		zap.Int("actors", len(actorIDs)),
		zap.Int("genres", len(genreIDs)),
	)

	detail := response.PlayToDetailResponse(play, actors, genres)
	return &detail, nil
}

func (s *playService) AddRelations(ctx context.Context, playID string, actorIDs, genreIDs []uuid.UUID) error {
	id, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("play not found")
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get play by id: %w", err)
	}
	if play == nil {
		return fmt.Errorf("play not found")
	}

	if _, err := s.checkActors(ctx, actorIDs); err != nil {
		return err
	}
	if _, err := s.checkGenres(ctx, genreIDs); err != nil {
		return err
	}

	now := time.Now()
	for _, actorID := range actorIDs {
		pa := &entity.PlayActor{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			PlayID:     play.ID,
			ActorID:    actorID,
		}
		if err := s.repo.PlayActor.Add(ctx, pa); err != nil {
			return fmt.Errorf("add play actor: %w", err)
		}
	}

	for _, genreID := range genreIDs {
		pg := &entity.PlayGenre{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			PlayID:     play.ID,
			GenreID:    genreID,
		}
		if err := s.repo.PlayGenre.Add(ctx, pg); err != nil {
			return fmt.Errorf("add play genre: %w", err)
		}
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *playService) checkActors(ctx context.Context, ids []uuid.UUID) ([]*entity.Actor, error) {
	actors := make([]*entity.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := s.repo.Actor.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to check actor existence",
				zap.Error(err),
				zap.String("actor_id", id.String()),
			)
			return nil, fmt.Errorf("check actor: %w", err)
		}
		if actor == nil {
			return nil, fmt.Errorf("invalid actor reference: %s", id)
		}
		actors = append(actors, actor)
	}
	return actors, nil
}

func (s *playService) checkGenres(ctx context.Context, ids []uuid.UUID) ([]*entity.Genre, error) {
	genres := make([]*entity.Genre, 0, len(ids))
	for _, id := range ids {
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to check genre existence",
				zap.Error(err),
				zap.String("genre_id", id.String()),
			)
			return nil, fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return nil, fmt.Errorf("invalid genre reference: %s", id)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}
