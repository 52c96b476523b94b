package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_SetsHeaderStatusAndBody(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"error": "not found"}, 404)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 404, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rr, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rr.Code)
}

func TestWriteJSON_EmptySliceSerializesAsArray(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, []struct{}{}, 200)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", rr.Body.String())
}
