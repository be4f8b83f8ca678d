// Package model defines the domain entities stored in the document store and
// the request shapes accepted by the API. Update types use pointer fields so
// merge-patch semantics can distinguish "absent" from "zero".
package model

import "time"

// PokemonData is the full enriched creature record denormalized onto a
// location at write time. Populated from the PokeAPI, never supplied raw by
// callers beyond a name list.
type PokemonData struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Abilities []string `json:"abilities"`
	Type      []string `json:"type"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
}

// PokemonInTeam is the minimal creature summary carried on a trainer's team.
type PokemonInTeam struct {
	Name string   `json:"name"`
	Type []string `json:"type"`
}

// Location is a place where pokemon can be sighted.
type Location struct {
	ID          string        `json:"id"`
	AddressName string        `json:"addressName"`
	Terrain     string        `json:"terrain"`
	Pokemon     []PokemonData `json:"pokemon"`
}

// LocationInput is the create-location request body. Pokemon holds names to
// be resolved against the PokeAPI.
type LocationInput struct {
	AddressName string   `json:"addressName" validate:"required,notblank"`
	Terrain     string   `json:"terrain" validate:"required,notblank"`
	Pokemon     []string `json:"pokemon" validate:"omitempty,dive,notblank"`
}

// LocationUpdate is the merge-patch body for an existing location.
type LocationUpdate struct {
	AddressName *string   `json:"addressName,omitempty" validate:"omitempty,notblank"`
	Terrain     *string   `json:"terrain,omitempty" validate:"omitempty,notblank"`
	Pokemon     *[]string `json:"pokemon,omitempty" validate:"omitempty,dive,notblank"`
}

// IsEmpty reports whether the patch contains no recognized fields.
func (u LocationUpdate) IsEmpty() bool {
	return u.AddressName == nil && u.Terrain == nil && u.Pokemon == nil
}

// Trainer is a registered pokemon trainer. UID links the record to an
// identity-provider subject once custom claims are assigned.
type Trainer struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Age    *int            `json:"age,omitempty"`
	Region *string         `json:"region,omitempty"`
	UID    *string         `json:"uid,omitempty"`
	Team   []PokemonInTeam `json:"team"`
}

// TrainerInput is the create-trainer request body. Team holds names to be
// resolved against the PokeAPI.
type TrainerInput struct {
	Name   string   `json:"name" validate:"required,notblank"`
	Age    *int     `json:"age,omitempty" validate:"omitempty,gt=0"`
	Region *string  `json:"region,omitempty" validate:"omitempty,notblank"`
	Team   []string `json:"team" validate:"omitempty,dive,notblank"`
}

// TrainerUpdate is the merge-patch body for an existing trainer.
type TrainerUpdate struct {
	Name   *string   `json:"name,omitempty" validate:"omitempty,notblank"`
	Age    *int      `json:"age,omitempty" validate:"omitempty,gt=0"`
	Region *string   `json:"region,omitempty" validate:"omitempty,notblank"`
	UID    *string   `json:"uid,omitempty" validate:"omitempty,notblank"`
	Team   *[]string `json:"team,omitempty" validate:"omitempty,dive,notblank"`
}

// IsEmpty reports whether the patch contains no recognized fields.
func (u TrainerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Region == nil && u.UID == nil && u.Team == nil
}

// Sighting records a pokemon seen by a trainer at a location. PokemonName is
// the canonical name returned by the PokeAPI, not the caller's casing.
type Sighting struct {
	ID          string    `json:"id"`
	TrainerID   string    `json:"trainerId"`
	LocationID  string    `json:"locationId"`
	PokemonName string    `json:"pokemonName"`
	Date        time.Time `json:"date"`
	Notes       *string   `json:"notes,omitempty"`
}

// SightingInput is the create-sighting request body.
type SightingInput struct {
	TrainerID   string    `json:"trainerId" validate:"required,notblank"`
	LocationID  string    `json:"locationId" validate:"required,notblank"`
	PokemonName string    `json:"pokemonName" validate:"required,notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Notes       *string   `json:"notes,omitempty"`
}

// SightingUpdate is the merge-patch body for an existing sighting.
type SightingUpdate struct {
	TrainerID   *string    `json:"trainerId,omitempty" validate:"omitempty,notblank"`
	LocationID  *string    `json:"locationId,omitempty" validate:"omitempty,notblank"`
	PokemonName *string    `json:"pokemonName,omitempty" validate:"omitempty,notblank"`
	Date        *time.Time `json:"date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch contains no recognized fields.
func (u SightingUpdate) IsEmpty() bool {
	return u.TrainerID == nil && u.LocationID == nil && u.PokemonName == nil &&
		u.Date == nil && u.Notes == nil
}
