package pokeapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuResponse = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"abilities": [
		{"ability": {"name": "static"}},
		{"ability": {"name": "lightning-rod"}}
	],
	"types": [
		{"type": {"name": "electric"}}
	]
}`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("https://pokeapi.test/api/v2", 6000, nil)
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Pokemon_Success(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, pikachuResponse))

	got, err := c.Pokemon(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, "25", got.ID)
	assert.Equal(t, "pikachu", got.Name)
	assert.Equal(t, []string{"static", "lightning-rod"}, got.Abilities)
	assert.Equal(t, []string{"electric"}, got.Type)
	assert.Equal(t, 4, got.Height)
	assert.Equal(t, 60, got.Weight)
}

func TestClient_Pokemon_LowercasesName(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, pikachuResponse))

	got, err := c.Pokemon(context.Background(), "  PIKACHU ")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", got.Name)
}

func TestClient_Pokemon_NotFound(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/missingno",
		httpmock.NewStringResponder(http.StatusNotFound, "Not Found"))

	got, err := c.Pokemon(context.Background(), "missingno")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Pokemon_UpstreamFailureIsNotNotFound(t *testing.T) {
	c := newTestClient(t)

	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/pikachu",
			httpmock.NewStringResponder(status, "upstream sad"))

		got, err := c.Pokemon(context.Background(), "pikachu")
		assert.Nil(t, got)
		require.Error(t, err)
		// Transport failures must never masquerade as a missing pokemon.
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestClient_Pokemon_InvalidJSON(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, "{not json"))

	_, err := c.Pokemon(context.Background(), "pikachu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_TeamSummary(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, pikachuResponse))

	got, err := c.TeamSummary(context.Background(), "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", got.Name)
	assert.Equal(t, []string{"electric"}, got.Type)
}

func TestClient_TeamSummary_NotFound(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "https://pokeapi.test/api/v2/pokemon/missingno",
		httpmock.NewStringResponder(http.StatusNotFound, "Not Found"))

	got, err := c.TeamSummary(context.Background(), "missingno")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}
