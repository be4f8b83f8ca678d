package validate

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhq/fielddex/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestStruct_ValidLocationInput(t *testing.T) {
	in := model.LocationInput{
		AddressName: "Viridian Forest",
		Terrain:     "forest",
		Pokemon:     []string{"pikachu", "caterpie"},
	}
	assert.Nil(t, Struct(in))
}

func TestStruct_LocationInputMissingFields(t *testing.T) {
	err := Struct(model.LocationInput{})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Name is required; Terrain is required", err.Message)
}

func TestStruct_LocationInputBlankAfterTrim(t *testing.T) {
	err := Struct(model.LocationInput{AddressName: "   ", Terrain: "cave"})
	require.NotNil(t, err)
	assert.Equal(t, "Name cannot be empty", err.Message)
}

func TestStruct_LocationInputBlankPokemonName(t *testing.T) {
	err := Struct(model.LocationInput{
		AddressName: "Mt. Moon",
		Terrain:     "cave",
		Pokemon:     []string{"zubat", " "},
	})
	require.NotNil(t, err)
	assert.Equal(t, "Pokemon name cannot be empty", err.Message)
}

func TestStruct_TrainerInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := model.TrainerInput{
			Name:   "Brock",
			Age:    intPtr(15),
			Region: strPtr("Kanto"),
			Team:   []string{"onix", "geodude"},
		}
		assert.Nil(t, Struct(in))
	})

	t.Run("region optional", func(t *testing.T) {
		assert.Nil(t, Struct(model.TrainerInput{Name: "Ash"}))
	})

	t.Run("missing name", func(t *testing.T) {
		err := Struct(model.TrainerInput{})
		require.NotNil(t, err)
		assert.Equal(t, "name is required", err.Message)
	})

	t.Run("non-positive age", func(t *testing.T) {
		err := Struct(model.TrainerInput{Name: "Ash", Age: intPtr(0)})
		require.NotNil(t, err)
		assert.Equal(t, "age must be a positive number", err.Message)
	})

	t.Run("blank region", func(t *testing.T) {
		err := Struct(model.TrainerInput{Name: "Ash", Region: strPtr("  ")})
		require.NotNil(t, err)
		assert.Equal(t, "region cannot be empty", err.Message)
	})
}

func TestStruct_TrainerUpdateOptionalFields(t *testing.T) {
	// A patch touching a single field validates only that field.
	assert.Nil(t, Struct(model.TrainerUpdate{Name: strPtr("Gary")}))

	err := Struct(model.TrainerUpdate{Age: intPtr(-3)})
	require.NotNil(t, err)
	assert.Equal(t, "age must be a positive number", err.Message)
}

func TestStruct_SightingInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := model.SightingInput{
			TrainerID:   "t1",
			LocationID:  "loc-1",
			PokemonName: "Pikachu",
			Date:        time.Now(),
		}
		assert.Nil(t, Struct(in))
	})

	t.Run("all required missing", func(t *testing.T) {
		err := Struct(model.SightingInput{})
		require.NotNil(t, err)
		assert.Equal(t,
			"trainerId is required; locationId is required; pokemonName is required; date is required",
			err.Message)
	})

	t.Run("blank pokemonName", func(t *testing.T) {
		err := Struct(model.SightingInput{
			TrainerID:   "t1",
			LocationID:  "loc-1",
			PokemonName: "  ",
			Date:        time.Now(),
		})
		require.NotNil(t, err)
		assert.Equal(t, "pokemonName cannot be empty", err.Message)
	})
}

func TestEmptyPatch(t *testing.T) {
	err := EmptyPatch()
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Contains(t, err.Message, "At least one field")
}

func TestIsEmptyHelpers(t *testing.T) {
	assert.True(t, model.LocationUpdate{}.IsEmpty())
	assert.True(t, model.TrainerUpdate{}.IsEmpty())
	assert.True(t, model.SightingUpdate{}.IsEmpty())

	assert.False(t, model.LocationUpdate{Terrain: strPtr("cave")}.IsEmpty())
	assert.False(t, model.TrainerUpdate{Age: intPtr(9)}.IsEmpty())
	assert.False(t, model.SightingUpdate{Notes: strPtr("seen at dawn")}.IsEmpty())
}
