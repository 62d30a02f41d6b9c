package request

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListUnmarshalArray(t *testing.T) {
	var req PlayRequest
	body := `{"title":"Hamlet","description":"A tragedy","actors":["a1","a2"]}`

	err := json.Unmarshal([]byte(body), &req)
	require.NoError(t, err)
	assert.Equal(t, IDList{"a1", "a2"}, req.Actors)
}

func TestIDListUnmarshalBareScalar(t *testing.T) {
	var req PlayRequest
	body := `{"title":"Hamlet","description":"A tragedy","genres":"g1"}`

	err := json.Unmarshal([]byte(body), &req)
	require.NoError(t, err)
	assert.Equal(t, IDList{"g1"}, req.Genres)
}

func TestIDListUnmarshalRejectsNumbers(t *testing.T) {
	var req PlayRequest
	body := `{"title":"Hamlet","description":"A tragedy","actors":42}`

	err := json.Unmarshal([]byte(body), &req)
	assert.Error(t, err)
}

func TestIDListUUIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	list := IDList{a.String(), " " + b.String() + " ", a.String()}
	ids, err := list.UUIDs()
	require.NoError(t, err)

	// duplicates collapse, whitespace is tolerated, order is preserved
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestIDListUUIDsMalformed(t *testing.T) {
	list := IDList{"not-a-uuid"}
	_, err := list.UUIDs()
	assert.Error(t, err)
}

func TestParsePlayFilterEmpty(t *testing.T) {
	filter := ParsePlayFilter(url.Values{})
	assert.Nil(t, filter.ActorIDs)
	assert.Nil(t, filter.GenreIDs)
}

func TestParsePlayFilterDropsMalformedTokens(t *testing.T) {
	a := uuid.New()

	query := url.Values{}
	query.Set("actors", a.String()+",abc,,999")

	filter := ParsePlayFilter(query)
	assert.Equal(t, []uuid.UUID{a}, filter.ActorIDs)
}

func TestParsePlayFilterAllMalformed(t *testing.T) {
	query := url.Values{}
	query.Set("genres", "abc,xyz")

	// a parameter with no valid tokens imposes no constraint
	filter := ParsePlayFilter(query)
	assert.Empty(t, filter.GenreIDs)
}

func TestParsePlayFilterCollapsesDuplicates(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	query := url.Values{}
	query.Set("actors", a.String()+", "+b.String()+" ,"+a.String())

	filter := ParsePlayFilter(query)
	assert.Equal(t, []uuid.UUID{a, b}, filter.ActorIDs)
}

func TestParsePlayFilterBothParams(t *testing.T) {
	a := uuid.New()
	g := uuid.New()

	query := url.Values{}
	query.Set("actors", a.String())
	query.Set("genres", g.String())

	filter := ParsePlayFilter(query)
	assert.Equal(t, []uuid.UUID{a}, filter.ActorIDs)
	assert.Equal(t, []uuid.UUID{g}, filter.GenreIDs)
}
