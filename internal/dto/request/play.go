package request

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// IDList accepts either a JSON array of id strings or one bare id string.
// A bare id is normalized to a one-element list.
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = IDList{one}
		return nil
	}

	return fmt.Errorf("expected an id string or an array of id strings")
}

// UUIDs parses the list into a de-duplicated set of UUIDs
func (l IDList) UUIDs() ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(l))
	ids := make([]uuid.UUID, 0, len(l))

	for _, raw := range l {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid id: %s", raw)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

type PlayRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
	Actors      IDList `json:"actors,omitempty" validate:"omitempty,dive,uuid4"`
	Genres      IDList `json:"genres,omitempty" validate:"omitempty,dive,uuid4"`
}

// PlayFilter is the parsed form of the actors/genres listing query params,
// passed as a plain value into the store query.
type PlayFilter struct {
	ActorIDs []uuid.UUID
	GenreIDs []uuid.UUID
}

func ParsePlayFilter(query url.Values) PlayFilter {
	return PlayFilter{
		ActorIDs: parseIDParam(query.Get("actors")),
		GenreIDs: parseIDParam(query.Get("genres")),
	}
}

// parseIDParam splits a comma-separated id list. Whitespace is tolerated,
// malformed tokens are dropped silently and duplicates collapse; a parameter
// with no valid tokens imposes no constraint.
func parseIDParam(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID

	for _, token := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}
