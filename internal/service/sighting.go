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

// SightingService orchestrates the sighting lifecycle. A sighting
// references a trainer and a location by id and a pokemon by name; all three
// references are checked before any write, and the stored pokemon name is
// the canonical one returned by the PokeAPI.
type SightingService struct {
	store  store.Store
	lookup PokemonLookup
	logger *slog.Logger
}

func NewSightingService(s store.Store, lookup PokemonLookup, logger *slog.Logger) *SightingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SightingService{store: s, lookup: lookup, logger: logger}
}

// Create runs the three reference checks concurrently, evaluates the
// outcomes in trainer → location → pokemon order, and persists the sighting
// only when all pass.
func (s *SightingService) Create(ctx context.Context, in model.SightingInput) (model.Sighting, error) {
	trainerID := strings.TrimSpace(in.TrainerID)
	locationID := strings.TrimSpace(in.LocationID)

	var (
		trainerExists  bool
		locationExists bool
		pokemon        *model.PokemonData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exists, err := s.exists(gctx, config.TrainersCollection, trainerID)
		trainerExists = exists
		return err
	})
	g.Go(func() error {
		exists, err := s.exists(gctx, config.LocationsCollection, locationID)
		locationExists = exists
		return err
	})
	g.Go(func() error {
		data, err := s.lookup.Pokemon(gctx, in.PokemonName)
		if err != nil && !errors.Is(err, pokeapi.ErrNotFound) {
			s.logger.Error("pokemon lookup failed", "name", in.PokemonName, "error", err)
			return apperr.Service(fmt.Sprintf("Failed to fetch data for Pokemon '%s'.", in.PokemonName))
		}
		pokemon = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Sighting{}, err
	}

	// All three outcomes in hand; report failures in checked order.
	if !trainerExists {
		return model.Sighting{}, apperr.Service(fmt.Sprintf("Trainer with ID %s not found.", trainerID))
	}
	if !locationExists {
		return model.Sighting{}, apperr.Service(fmt.Sprintf("Location with ID %s not found.", locationID))
	}
	if pokemon == nil {
		return model.Sighting{}, apperr.Service(fmt.Sprintf("Pokemon with name %s not found.", in.PokemonName))
	}

	sighting := model.Sighting{
		TrainerID:   trainerID,
		LocationID:  locationID,
		PokemonName: pokemon.Name, // canonical, not caller casing
		Date:        in.Date.UTC(),
		Notes:       trimPtr(in.Notes),
	}

	id, err := s.store.Create(ctx, config.SightingsCollection, sighting)
	if err != nil {
		s.logger.Error("create sighting failed", "error", err)
		return model.Sighting{}, apperr.Repository("Failed to create sighting.")
	}
	sighting.ID = id
	return sighting, nil
}

// GetAll returns every stored sighting.
func (s *SightingService) GetAll(ctx context.Context) ([]model.Sighting, error) {
	docs, err := s.store.GetAll(ctx, config.SightingsCollection)
	if err != nil {
		s.logger.Error("list sightings failed", "error", err)
		return nil, apperr.Repository("Failed to fetch sightings.")
	}

	sightings := make([]model.Sighting, 0, len(docs))
	for _, doc := range docs {
		sighting, err := decodeDocument(doc, func(sg *model.Sighting, id string) { sg.ID = id })
		if err != nil {
			return nil, err
		}
		sightings = append(sightings, sighting)
	}
	return sightings, nil
}

// GetByID returns one sighting, or a typed not-found error.
func (s *SightingService) GetByID(ctx context.Context, id string) (model.Sighting, error) {
	doc, err := s.store.GetByID(ctx, config.SightingsCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Sighting{}, apperr.NotFound(fmt.Sprintf("Sighting with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("get sighting failed", "id", id, "error", err)
		return model.Sighting{}, apperr.Repository("Failed to fetch sighting.")
	}
	return decodeDocument(doc, func(sg *model.Sighting, id string) { sg.ID = id })
}

// Update merge-patches a sighting, re-validating only the supplied fields:
// a new pokemonName is re-resolved and canonicalized, new trainer/location
// ids are existence-checked, everything else passes through untouched.
func (s *SightingService) Update(ctx context.Context, id string, in model.SightingUpdate) (model.Sighting, error) {
	patch := make(map[string]any)

	if in.PokemonName != nil {
		data, err := s.lookup.Pokemon(ctx, *in.PokemonName)
		if errors.Is(err, pokeapi.ErrNotFound) {
			return model.Sighting{}, apperr.Service(fmt.Sprintf("Pokemon with name %s not found.", *in.PokemonName))
		}
		if err != nil {
			s.logger.Error("pokemon lookup failed", "name", *in.PokemonName, "error", err)
			return model.Sighting{}, apperr.Service(fmt.Sprintf("Failed to fetch data for Pokemon '%s'.", *in.PokemonName))
		}
		patch["pokemonName"] = data.Name
	}

	if in.TrainerID != nil {
		trainerID := strings.TrimSpace(*in.TrainerID)
		exists, err := s.exists(ctx, config.TrainersCollection, trainerID)
		if err != nil {
			return model.Sighting{}, err
		}
		if !exists {
			return model.Sighting{}, apperr.Service(fmt.Sprintf("Trainer with ID %s not found.", trainerID))
		}
		patch["trainerId"] = trainerID
	}

	if in.LocationID != nil {
		locationID := strings.TrimSpace(*in.LocationID)
		exists, err := s.exists(ctx, config.LocationsCollection, locationID)
		if err != nil {
			return model.Sighting{}, err
		}
		if !exists {
			return model.Sighting{}, apperr.Service(fmt.Sprintf("Location with ID %s not found.", locationID))
		}
		patch["locationId"] = locationID
	}

	if in.Date != nil {
		patch["date"] = in.Date.UTC()
	}
	if in.Notes != nil {
		patch["notes"] = strings.TrimSpace(*in.Notes)
	}

	err := s.store.Update(ctx, config.SightingsCollection, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return model.Sighting{}, apperr.NotFound(fmt.Sprintf("Sighting with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("update sighting failed", "id", id, "error", err)
		return model.Sighting{}, apperr.Repository("Failed to update sighting.")
	}
	return s.GetByID(ctx, id)
}

// Delete removes a sighting. Deleting a nonexistent id is not an error.
func (s *SightingService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, config.SightingsCollection, id); err != nil {
		s.logger.Error("delete sighting failed", "id", id, "error", err)
		return apperr.Repository("Failed to delete sighting.")
	}
	return nil
}

// exists reports whether a document is present, mapping infrastructure
// failures to a repository error.
func (s *SightingService) exists(ctx context.Context, collection, id string) (bool, error) {
	_, err := s.store.GetByID(ctx, collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("existence check failed", "collection", collection, "id", id, "error", err)
		return false, apperr.Repository("Failed to verify references.")
	}
	return true, nil
}
