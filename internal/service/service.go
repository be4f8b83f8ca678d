// Package service implements the entity lifecycle operations for locations,
// trainers, and sightings: schema-validated input, cross-reference existence
// checks, PokeAPI enrichment, and document persistence. Handlers call these
// services and forward any error to the response pipeline untouched.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/store"
)

// PokemonLookup resolves creature names against the PokeAPI. pokeapi.Client
// satisfies it; tests substitute a double.
type PokemonLookup interface {
	Pokemon(ctx context.Context, name string) (*model.PokemonData, error)
	TeamSummary(ctx context.Context, name string) (*model.PokemonInTeam, error)
}

// decodeDocument unmarshals a stored document into an entity and stamps the
// repository-assigned id.
func decodeDocument[T any](doc store.Document, setID func(*T, string)) (T, error) {
	var entity T
	if err := json.Unmarshal(doc.Data, &entity); err != nil {
		return entity, apperr.Repository(fmt.Sprintf("Failed to decode stored document %s", doc.ID))
	}
	setID(&entity, doc.ID)
	return entity, nil
}
