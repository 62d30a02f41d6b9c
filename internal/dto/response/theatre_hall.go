package response

import (
	"github.com/Roman28101/theatre-service-api/internal/data/entity"
)

type TheatreHallResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func TheatreHallToResponse(hall *entity.TheatreHall) TheatreHallResponse {
	return TheatreHallResponse{
		ID:         hall.ID.String(),
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
