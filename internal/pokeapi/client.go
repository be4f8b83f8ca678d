// Package pokeapi provides the PokeAPI lookup client used to enrich
// locations, trainer teams, and sightings with canonical creature data.
//
// Lookups are keyed by case-insensitive name. An upstream 404 is reported as
// ErrNotFound so callers can turn it into a domain error; any other upstream
// failure (network, rate limit, 5xx) is a distinct transport error and is
// never collapsed into "not found".
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/oakhq/fielddex/internal/model"
)

// ErrNotFound signals that no pokemon exists under the looked-up name.
var ErrNotFound = errors.New("pokemon not found")

// Client is the shared HTTP client for PokeAPI lookups, rate limited to stay
// under the public API's fair-use ceiling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a PokeAPI client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// pokemonResponse is the subset of the PokeAPI /pokemon payload we consume.
type pokemonResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Pokemon resolves a name to its full canonical record.
func (c *Client) Pokemon(ctx context.Context, name string) (*model.PokemonData, error) {
	resp, err := c.getPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	abilities := make([]string, 0, len(resp.Abilities))
	for _, a := range resp.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}
	types := make([]string, 0, len(resp.Types))
	for _, t := range resp.Types {
		types = append(types, t.Type.Name)
	}

	return &model.PokemonData{
		ID:        strconv.Itoa(resp.ID),
		Name:      resp.Name,
		Abilities: abilities,
		Type:      types,
		Height:    resp.Height,
		Weight:    resp.Weight,
	}, nil
}

// TeamSummary resolves a name to the minimal record carried on a trainer's
// team.
func (c *Client) TeamSummary(ctx context.Context, name string) (*model.PokemonInTeam, error) {
	resp, err := c.getPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(resp.Types))
	for _, t := range resp.Types {
		types = append(types, t.Type.Name)
	}

	return &model.PokemonInTeam{Name: resp.Name, Type: types}, nil
}

// getPokemon performs a rate-limited GET /pokemon/{name} request.
func (c *Client) getPokemon(ctx context.Context, name string) (*pokemonResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	u := c.baseURL + "/pokemon/" + lower

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request /pokemon/%s: %w", lower, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn("pokemon not found in PokeAPI", "name", lower)
		return nil, ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PokeAPI /pokemon/%s returned %d: %s", lower, resp.StatusCode, truncate(body, 200))
	}

	var result pokemonResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
