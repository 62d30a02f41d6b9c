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

type TheatreHallService interface {
	GetTheatreHalls(ctx context.Context) ([]response.TheatreHallResponse, error)
	GetTheatreHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error)
	CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error)
}

type theatreHallService struct {
	repo repository.TheatreHallRepository
	log  *zap.Logger
}

func NewTheatreHallService(repo repository.TheatreHallRepository, log *zap.Logger) TheatreHallService {
	return &theatreHallService{
		repo: repo,
		log:  log.With(zap.String("service", "theatre_hall")),
	}
}

func (s *theatreHallService) GetTheatreHalls(ctx context.Context) ([]response.TheatreHallResponse, error) {
	halls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get theatre halls", zap.Error(err))
		return nil, fmt.Errorf("get theatre halls: %w", err)
	}

	hallResponses := make([]response.TheatreHallResponse, len(halls))
	for i, hall := range halls {
		hallResponses[i] = response.TheatreHallToResponse(hall)
	}

	return hallResponses, nil
}

func (s *theatreHallService) GetTheatreHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		s.log.Warn("Invalid theatre hall ID format",
			zap.String("hall_id", hallID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("theatre hall not found")
	}

	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get theatre hall by ID",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return nil, fmt.Errorf("get theatre hall by id: %w", err)
	}

	if hall == nil {
		return nil, fmt.Errorf("theatre hall not found")
	}

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *theatreHallService) CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create theatre hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hall := &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		s.log.Error("Failed to create theatre hall", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create theatre hall: %w", err)
	}

	s.log.Info("Theatre hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}
