package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/pokeapi"
)

// fakeLookup serves canned pokemon records keyed by lowercase name and
// counts calls so tests can assert whether resolution happened.
type fakeLookup struct {
	pokemon map[string]model.PokemonData
	err     error
	calls   atomic.Int64
}

func newFakeLookup(records ...model.PokemonData) *fakeLookup {
	f := &fakeLookup{pokemon: make(map[string]model.PokemonData)}
	for _, r := range records {
		f.pokemon[r.Name] = r
	}
	return f
}

func (f *fakeLookup) Pokemon(_ context.Context, name string) (*model.PokemonData, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.pokemon[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("pokemon %q: %w", name, pokeapi.ErrNotFound)
	}
	return &data, nil
}

func (f *fakeLookup) TeamSummary(ctx context.Context, name string) (*model.PokemonInTeam, error) {
	data, err := f.Pokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	return &model.PokemonInTeam{Name: data.Name, Type: data.Type}, nil
}

var (
	pikachu = model.PokemonData{
		ID:        "25",
		Name:      "pikachu",
		Abilities: []string{"static", "lightning-rod"},
		Type:      []string{"electric"},
		Height:    4,
		Weight:    60,
	}
	bulbasaur = model.PokemonData{
		ID:        "1",
		Name:      "bulbasaur",
		Abilities: []string{"overgrow"},
		Type:      []string{"grass", "poison"},
		Height:    7,
		Weight:    69,
	}
)
