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

// TrainerService orchestrates the trainer lifecycle. Team members are
// enriched through the minimal team-summary lookup rather than the full
// detail one.
type TrainerService struct {
	store  store.Store
	lookup PokemonLookup
	logger *slog.Logger
}

func NewTrainerService(s store.Store, lookup PokemonLookup, logger *slog.Logger) *TrainerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainerService{store: s, lookup: lookup, logger: logger}
}

// Create resolves all team names concurrently and persists the trainer. No
// document is written when any name fails to resolve.
func (s *TrainerService) Create(ctx context.Context, in model.TrainerInput) (model.Trainer, error) {
	team, err := s.resolveTeam(ctx, in.Team)
	if err != nil {
		return model.Trainer{}, err
	}

	trainer := model.Trainer{
		Name:   strings.TrimSpace(in.Name),
		Age:    in.Age,
		Region: trimPtr(in.Region),
		Team:   team,
	}

	id, err := s.store.Create(ctx, config.TrainersCollection, trainer)
	if err != nil {
		s.logger.Error("create trainer failed", "error", err)
		return model.Trainer{}, apperr.Repository("Failed to create trainer.")
	}
	trainer.ID = id
	return trainer, nil
}

// GetAll returns every stored trainer.
func (s *TrainerService) GetAll(ctx context.Context) ([]model.Trainer, error) {
	docs, err := s.store.GetAll(ctx, config.TrainersCollection)
	if err != nil {
		s.logger.Error("list trainers failed", "error", err)
		return nil, apperr.Repository("Failed to fetch trainers.")
	}

	trainers := make([]model.Trainer, 0, len(docs))
	for _, doc := range docs {
		trainer, err := decodeDocument(doc, func(tr *model.Trainer, id string) { tr.ID = id })
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, trainer)
	}
	return trainers, nil
}

// GetByID returns one trainer, or a typed not-found error.
func (s *TrainerService) GetByID(ctx context.Context, id string) (model.Trainer, error) {
	doc, err := s.store.GetByID(ctx, config.TrainersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Trainer{}, apperr.NotFound(fmt.Sprintf("Trainer with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("get trainer failed", "id", id, "error", err)
		return model.Trainer{}, apperr.Repository("Failed to fetch trainer.")
	}
	return decodeDocument(doc, func(tr *model.Trainer, id string) { tr.ID = id })
}

// Update merge-patches a trainer. A supplied team name list is re-resolved
// exactly like create; absent fields stay untouched.
func (s *TrainerService) Update(ctx context.Context, id string, in model.TrainerUpdate) (model.Trainer, error) {
	patch := make(map[string]any)
	if in.Name != nil {
		patch["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		patch["age"] = *in.Age
	}
	if in.Region != nil {
		patch["region"] = strings.TrimSpace(*in.Region)
	}
	if in.UID != nil {
		patch["uid"] = strings.TrimSpace(*in.UID)
	}
	if in.Team != nil {
		team, err := s.resolveTeam(ctx, *in.Team)
		if err != nil {
			return model.Trainer{}, err
		}
		patch["team"] = team
	}

	err := s.store.Update(ctx, config.TrainersCollection, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return model.Trainer{}, apperr.NotFound(fmt.Sprintf("Trainer with ID %s not found.", id))
	}
	if err != nil {
		s.logger.Error("update trainer failed", "id", id, "error", err)
		return model.Trainer{}, apperr.Repository("Failed to update trainer.")
	}
	return s.GetByID(ctx, id)
}

// LinkUID stamps an identity-provider subject onto a trainer record. Used by
// the admin setCustomClaims flow.
func (s *TrainerService) LinkUID(ctx context.Context, id, uid string) (model.Trainer, error) {
	return s.Update(ctx, id, model.TrainerUpdate{UID: &uid})
}

// Delete removes a trainer. Deleting a nonexistent id is not an error.
func (s *TrainerService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, config.TrainersCollection, id); err != nil {
		s.logger.Error("delete trainer failed", "id", id, "error", err)
		return apperr.Repository("Failed to delete trainer.")
	}
	return nil
}

// resolveTeam fans out one team-summary lookup per name and joins the
// results in input order. The first failure wins and aborts the batch.
func (s *TrainerService) resolveTeam(ctx context.Context, names []string) ([]model.PokemonInTeam, error) {
	team := make([]model.PokemonInTeam, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			summary, err := s.lookup.TeamSummary(ctx, name)
			if errors.Is(err, pokeapi.ErrNotFound) {
				return apperr.Service(fmt.Sprintf("Pokemon '%s' not found.", name))
			}
			if err != nil {
				s.logger.Error("team lookup failed", "name", name, "error", err)
				return apperr.Service(fmt.Sprintf("Failed to fetch data for Pokemon '%s'.", name))
			}
			team[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return team, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
