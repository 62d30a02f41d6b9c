package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Roman28101/theatre-service-api/internal/dto/request"
	"github.com/Roman28101/theatre-service-api/internal/dto/response"
	"github.com/Roman28101/theatre-service-api/internal/usecase"
	"github.com/Roman28101/theatre-service-api/pkg/utils"

	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetActors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get actors")
		return
	}

	if actors == nil {
		actors = []response.ActorResponse{}
	}

	utils.ResponseSuccess(w, "Actors retrieved successfully", actors)
}

// CreateActor handles POST /actors (staff only)
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "Actor created successfully", actor)
}
