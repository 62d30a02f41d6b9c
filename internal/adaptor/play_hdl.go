package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Roman28101/theatre-service-api/internal/dto/request"
	"github.com/Roman28101/theatre-service-api/internal/dto/response"
	"github.com/Roman28101/theatre-service-api/internal/usecase"
	"github.com/Roman28101/theatre-service-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// GetPlays handles GET /plays with optional actors/genres filters
func (h *PlayHandler) GetPlays(w http.ResponseWriter, r *http.Request) {
	filter := request.ParsePlayFilter(r.URL.Query())

	plays, err := h.service.GetPlays(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "get plays")
		return
	}

	if plays == nil {
		plays = []response.PlayListResponse{}
	}

	utils.ResponseSuccess(w, "Plays retrieved successfully", plays)
}

// GetPlayByID handles GET /plays/{id}
func (h *PlayHandler) GetPlayByID(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	play, err := h.service.GetPlayByID(r.Context(), playID)
	if err != nil {
		handleServiceError(w, h.log, err, "get play by ID")
		return
	}

	utils.ResponseSuccess(w, "Play retrieved successfully", play)
}

// CreatePlay handles POST /plays (staff only)
func (h *PlayHandler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	play, err := h.service.CreatePlay(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create play")
		return
	}

	utils.ResponseCreated(w, "Play created successfully", play)
}
