package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/config"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/pokeapi"
	"github.com/oakhq/fielddex/internal/store"
)

// LocationService orchestrates the location lifecycle. Every creature name a
// caller supplies is resolved against the PokeAPI before anything is
// written; one unresolved name aborts the whole operation.
type LocationService struct {
	store  store.Store
	lookup PokemonLookup
	logger *slog.Logger
}

func NewLocationService(s store.Store, lookup PokemonLookup, logger *slog.Logger) *LocationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationService{store: s, lookup: lookup, logger: logger}
}

// Create resolves all supplied pokemon names concurrently, then persists the
// enriched location. No document is written when any name fails to resolve.
func (s *LocationService) Create(ctx context.Context, in model.LocationInput) (model.Location, error) {
	pokemon, err := s.resolvePokemon(ctx, in.Pokemon)
	if err != nil {
		return model.Location{}, err
	}

	loc := model.Location{
		AddressName: strings.TrimSpace(in.AddressName),
		Terrain:     strings.TrimSpace(in.Terrain),
		Pokemon:     pokemon,
	}

	id, err := s.store.Create(ctx, config.LocationsCollection, loc)
	if err != nil {
		s.logger.Error("create location failed", "error", err)
		return model.Location{}, apperr.Repository("Failed to create location.")
	}
	loc.ID = id
	return loc, nil
}

// GetAll returns every stored location.
func (s *LocationService) GetAll(ctx context.Context) ([]model.Location, error) {
	docs, err := s.store.GetAll(ctx, config.LocationsCollection)
	if err != nil {
		s.logger.Error("list locations failed", "error", err)
		return nil, apperr.Repository("Failed to fetch locations.")
	}

	locations := make([]model.Location, 0, len(docs))
	for _, doc := range docs {
		loc, err := decodeDocument(doc, func(l *model.Location, id string) { l.ID = id })
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// GetByID returns one location, or a typed not-found error.
func (s *LocationService) GetByID(ctx context.Context, id string) (model.Location, error) {
	doc, err := s.store.GetByID(ctx, config.LocationsCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Location{}, apperr.NotFound(fmt.Sprintf("Location with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("get location failed", "id", id, "error", err)
		return model.Location{}, apperr.Repository("Failed to fetch location.")
	}
	return decodeDocument(doc, func(l *model.Location, id string) { l.ID = id })
}

// Update merge-patches a location. A supplied pokemon name list is
// re-resolved exactly like create; absent fields stay untouched. The updated
// entity is re-fetched so the response reflects actual stored state.
func (s *LocationService) Update(ctx context.Context, id string, in model.LocationUpdate) (model.Location, error) {
	patch := make(map[string]any)
	if in.AddressName != nil {
		patch["addressName"] = strings.TrimSpace(*in.AddressName)
	}
	if in.Terrain != nil {
		patch["terrain"] = strings.TrimSpace(*in.Terrain)
	}
	if in.Pokemon != nil {
		pokemon, err := s.resolvePokemon(ctx, *in.Pokemon)
		if err != nil {
			return model.Location{}, err
		}
		patch["pokemon"] = pokemon
	}

	err := s.store.Update(ctx, config.LocationsCollection, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return model.Location{}, apperr.NotFound(fmt.Sprintf("Location with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("update location failed", "id", id, "error", err)
		return model.Location{}, apperr.Repository("Failed to update location.")
	}
	return s.GetByID(ctx, id)
}

// Delete removes a location. Deleting a nonexistent id is not an error.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, config.LocationsCollection, id); err != nil {
		s.logger.Error("delete location failed", "id", id, "error", err)
		return apperr.Repository("Failed to delete location.")
	}
	return nil
}

// resolvePokemon fans out one full-detail lookup per name and joins the
// results in input order. The first failure wins and aborts the batch.
func (s *LocationService) resolvePokemon(ctx context.Context, names []string) ([]model.PokemonData, error) {
	resolved := make([]model.PokemonData, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			data, err := s.lookup.Pokemon(ctx, name)
			if errors.Is(err, pokeapi.ErrNotFound) {
				return apperr.Service(fmt.Sprintf("Pokemon '%s' not found.", name))
			}
			if err != nil {
				s.logger.Error("pokemon lookup failed", "name", name, "error", err)
				return apperr.Service(fmt.Sprintf("Failed to fetch data for Pokemon '%s'.", name))
			}
			resolved[i] = *data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
