// Package validate wraps go-playground/validator with the per-field,
// per-rule messages the API contract promises. Violations are joined
// deterministically in field order; the result surfaces as a 400 with a
// flat {"error": "<joined>"} body.
package validate

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/oakhq/fielddex/internal/apperr"
)

// EmptyPatchMessage rejects update bodies that carry no recognized fields.
const EmptyPatchMessage = "Update request body cannot be empty. At least one field must be provided."

var (
	validate *validator.Validate
	once     sync.Once
)

// indexRe strips array indexes from namespaces, so Pokemon[2] resolves the
// same message as Pokemon.
var indexRe = regexp.MustCompile(`\[\d+\]`)

// messages maps struct namespace + failed tag to the contract message.
var messages = map[string]map[string]string{
	"LocationInput.AddressName": {
		"required": "Name is required",
		"notblank": "Name cannot be empty",
	},
	"LocationInput.Terrain": {
		"required": "Terrain is required",
		"notblank": "Terrain cannot be empty",
	},
	"LocationInput.Pokemon": {
		"notblank": "Pokemon name cannot be empty",
	},
	"LocationUpdate.AddressName": {
		"notblank": "Name cannot be empty",
	},
	"LocationUpdate.Terrain": {
		"notblank": "Terrain cannot be empty",
	},
	"LocationUpdate.Pokemon": {
		"notblank": "Pokemon name cannot be empty",
	},

	"TrainerInput.Name": {
		"required": "name is required",
		"notblank": "name cannot be empty",
	},
	"TrainerInput.Age": {
		"gt": "age must be a positive number",
	},
	"TrainerInput.Region": {
		"notblank": "region cannot be empty",
	},
	"TrainerInput.Team": {
		"notblank": "Pokemon name cannot be empty",
	},
	"TrainerUpdate.Name": {
		"notblank": "name cannot be empty",
	},
	"TrainerUpdate.Age": {
		"gt": "age must be a positive number",
	},
	"TrainerUpdate.Region": {
		"notblank": "region cannot be empty",
	},
	"TrainerUpdate.UID": {
		"notblank": "uid cannot be empty",
	},
	"TrainerUpdate.Team": {
		"notblank": "Pokemon name cannot be empty",
	},

	"SightingInput.TrainerID": {
		"required": "trainerId is required",
		"notblank": "trainerId cannot be empty",
	},
	"SightingInput.LocationID": {
		"required": "locationId is required",
		"notblank": "locationId cannot be empty",
	},
	"SightingInput.PokemonName": {
		"required": "pokemonName is required",
		"notblank": "pokemonName cannot be empty",
	},
	"SightingInput.Date": {
		"required": "date is required",
	},
	"SightingUpdate.TrainerID": {
		"notblank": "trainerId cannot be empty",
	},
	"SightingUpdate.LocationID": {
		"notblank": "locationId cannot be empty",
	},
	"SightingUpdate.PokemonName": {
		"notblank": "pokemonName cannot be empty",
	},
}

// get returns the singleton validator with the notblank rule registered.
func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// notblank: string must be non-empty after trimming whitespace.
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Struct validates a request struct and returns a ValidationError carrying
// one message per violated rule, joined with "; " in field order.
func Struct(v any) *apperr.Error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("Invalid request body")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, messageFor(fe))
	}
	return apperr.Validation(strings.Join(msgs, "; "))
}

// EmptyPatch is the error for an update body with zero recognized fields.
func EmptyPatch() *apperr.Error {
	return apperr.Validation(EmptyPatchMessage)
}

func messageFor(fe validator.FieldError) string {
	ns := indexRe.ReplaceAllString(fe.StructNamespace(), "")
	if byTag, ok := messages[ns]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	// Unmapped rule: fall back to a generic but stable message.
	return fe.StructField() + " is invalid"
}
