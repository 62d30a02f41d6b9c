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

type ActorService interface {
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
}

type actorService struct {
	repo repository.ActorRepository
	log  *zap.Logger
}

func NewActorService(repo repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get actors", zap.Error(err))
		return nil, fmt.Errorf("get actors: %w", err)
	}

	actorResponses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = response.ActorToResponse(actor)
	}

	return actorResponses, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err))
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("full_name", actor.FullName()),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}
