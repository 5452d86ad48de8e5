package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedList(t *testing.T) {
	router := gin.New()
	router.GET("/api/featured", NewFeaturedHandler().List)

	w := doJSON(router, "GET", "/api/featured", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Places  []struct {
			Name   string  `json:"name"`
			Rating float64 `json:"rating"`
			Price  string  `json:"price"`
		} `json:"places"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Count)
	require.Len(t, body.Places, 4)
	assert.Equal(t, "Café Madras", body.Places[0].Name)
	assert.NotEmpty(t, body.Places[0].Price)
}
