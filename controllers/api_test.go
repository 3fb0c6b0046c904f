package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)

	recorder := performRequest(t, router, http.MethodGet, "/api/v1/nothing-here", nil)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assertJSONContentType(t, recorder)

	var body map[string]string
	decodeBody(t, recorder, &body)
	assert.Equal(t, "unknown endpoint", body["error"])
}
