package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/validate"
)

// CreateSighting records a sighting after verifying its trainer, location,
// and pokemon references.
// @Summary Create sighting
// @Description Records a sighting; the trainer and location must exist and the pokemon name must resolve against the PokeAPI.
// @Tags sightings
// @Accept json
// @Produce json
// @Param sighting body model.SightingInput true "Sighting to create"
// @Success 201 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /sightings [post]
func (h *Handler) CreateSighting(w http.ResponseWriter, r *http.Request) {
	var in model.SightingInput
	if err := decodeBody(r, &in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if err := validate.Struct(in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	sighting, err := h.sightings.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusCreated, sighting, "Sighting created successfully.")
}

// GetSightings lists all sightings.
// @Summary List sightings
// @Tags sightings
// @Produce json
// @Success 200 {object} respond.SuccessEnvelope
// @Router /sightings [get]
func (h *Handler) GetSightings(w http.ResponseWriter, r *http.Request) {
	sightings, err := h.sightings.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, sightings, "")
}

// GetSighting returns one sighting by id.
// @Summary Get sighting
// @Tags sightings
// @Produce json
// @Param id path string true "Sighting ID"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /sightings/{id} [get]
func (h *Handler) GetSighting(w http.ResponseWriter, r *http.Request) {
	sighting, err := h.sightings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, sighting, "")
}

// UpdateSighting merge-patches a sighting, re-validating only supplied
// references.
// @Summary Update sighting
// @Tags sightings
// @Accept json
// @Produce json
// @Param id path string true "Sighting ID"
// @Param sighting body model.SightingUpdate true "Fields to update"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /sightings/{id} [put]
func (h *Handler) UpdateSighting(w http.ResponseWriter, r *http.Request) {
	var in model.SightingUpdate
	if err := decodeBody(r, &in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if in.IsEmpty() {
		respond.Error(w, h.logger, validate.EmptyPatch())
		return
	}
	if err := validate.Struct(in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	sighting, err := h.sightings.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, sighting, "Sighting updated successfully.")
}

// DeleteSighting removes a sighting.
// @Summary Delete sighting
// @Tags sightings
// @Param id path string true "Sighting ID"
// @Success 204
// @Router /sightings/{id} [delete]
func (h *Handler) DeleteSighting(w http.ResponseWriter, r *http.Request) {
	if err := h.sightings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.NoContent(w)
}
