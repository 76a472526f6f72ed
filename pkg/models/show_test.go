package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_NullableFieldsEncodeAsNull(t *testing.T) {
	b, err := json.Marshal(Show{ID: "s1", Name: "Silo", Tags: []string{}})
	require.NoError(t, err)

	for _, key := range []string{"description", "absolute_rank", "cover_url", "tvmaze_id", "tvmaze_rating"} {
		assert.Contains(t, string(b), `"`+key+`":null`, key)
	}
	assert.NotContains(t, string(b), "seq")
}

func TestShow_TVMazeIDSet(t *testing.T) {
	id := 42
	b, err := json.Marshal(Show{ID: "s1", TVMazeID: &id})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tvmaze_id":42`)
}
