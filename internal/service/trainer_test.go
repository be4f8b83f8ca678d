package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/config"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/store"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestTrainerCreateResolvesTeam(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTrainerService(mem, newFakeLookup(pikachu, bulbasaur), nil)

	trainer, err := svc.Create(context.Background(), model.TrainerInput{
		Name:   "  Ash  ",
		Age:    intPtr(10),
		Region: strPtr("Kanto"),
		Team:   []string{"Pikachu", "bulbasaur"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trainer.ID)
	assert.Equal(t, "Ash", trainer.Name)
	require.NotNil(t, trainer.Age)
	assert.Equal(t, 10, *trainer.Age)
	require.Len(t, trainer.Team, 2)
	assert.Equal(t, model.PokemonInTeam{Name: "pikachu", Type: []string{"electric"}}, trainer.Team[0])
	assert.Equal(t, "bulbasaur", trainer.Team[1].Name)
}

func TestTrainerCreateUnknownTeamMemberAborts(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTrainerService(mem, newFakeLookup(pikachu), nil)

	_, err := svc.Create(context.Background(), model.TrainerInput{
		Name: "Gary",
		Team: []string{"missingno"},
	})
	var domainErr *apperr.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Pokemon 'missingno' not found.", domainErr.Message)
	assert.Zero(t, mem.Len(config.TrainersCollection))
}

func TestTrainerGetByIDNotFound(t *testing.T) {
	svc := NewTrainerService(store.NewMemory(), newFakeLookup(), nil)

	_, err := svc.GetByID(context.Background(), "nope")
	var domainErr *apperr.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, apperr.CodeNotFound, domainErr.Code)
	assert.Equal(t, "Trainer with ID nope not found.", domainErr.Message)
}

func TestTrainerUpdatePreservesAbsentFields(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTrainerService(mem, newFakeLookup(pikachu), nil)

	trainer, err := svc.Create(context.Background(), model.TrainerInput{
		Name:   "Misty",
		Age:    intPtr(12),
		Region: strPtr("Kanto"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), trainer.ID, model.TrainerUpdate{Age: intPtr(13)})
	require.NoError(t, err)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 13, *updated.Age)
	assert.Equal(t, "Misty", updated.Name)
	require.NotNil(t, updated.Region)
	assert.Equal(t, "Kanto", *updated.Region)
}

func TestTrainerLinkUID(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTrainerService(mem, newFakeLookup(), nil)

	trainer, err := svc.Create(context.Background(), model.TrainerInput{Name: "Brock"})
	require.NoError(t, err)
	assert.Nil(t, trainer.UID)

	linked, err := svc.LinkUID(context.Background(), trainer.ID, "subject-42")
	require.NoError(t, err)
	require.NotNil(t, linked.UID)
	assert.Equal(t, "subject-42", *linked.UID)
}

func TestTrainerDeleteIdempotent(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTrainerService(mem, newFakeLookup(), nil)

	trainer, err := svc.Create(context.Background(), model.TrainerInput{Name: "Red"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), trainer.ID))
	require.NoError(t, svc.Delete(context.Background(), trainer.ID))
}
