package utils

import (
	"github.com/google/uuid"
)

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateSessionToken creates a new opaque bearer token
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
