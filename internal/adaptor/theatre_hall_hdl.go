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

type TheatreHallHandler struct {
	service usecase.TheatreHallService
	log     *zap.Logger
}

func NewTheatreHallHandler(service usecase.TheatreHallService, log *zap.Logger) *TheatreHallHandler {
	return &TheatreHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "theatre_hall")),
	}
}

// GetTheatreHalls handles GET /theatre-halls
func (h *TheatreHallHandler) GetTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetTheatreHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get theatre halls")
		return
	}

	if halls == nil {
		halls = []response.TheatreHallResponse{}
	}

	utils.ResponseSuccess(w, "Theatre halls retrieved successfully", halls)
}

// GetTheatreHallByID handles GET /theatre-halls/{id}
func (h *TheatreHallHandler) GetTheatreHallByID(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	hall, err := h.service.GetTheatreHallByID(r.Context(), hallID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theatre hall by ID")
		return
	}

	utils.ResponseSuccess(w, "Theatre hall retrieved successfully", hall)
}

// CreateTheatreHall handles POST /theatre-halls (staff only)
func (h *TheatreHallHandler) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var req request.TheatreHallRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.CreateTheatreHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create theatre hall")
		return
	}

	utils.ResponseCreated(w, "Theatre hall created successfully", hall)
}
