package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorFullName(t *testing.T) {
	actor := &Actor{FirstName: "Konstantin", LastName: "Khabensky"}
	assert.Equal(t, "Konstantin Khabensky", actor.FullName())
}

func TestTheatreHallCapacity(t *testing.T) {
	hall := &TheatreHall{Name: "Main Stage", Rows: 20, SeatsInRow: 30}
	assert.Equal(t, 600, hall.Capacity())
}
