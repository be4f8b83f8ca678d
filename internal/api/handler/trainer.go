package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/validate"
)

// CreateTrainer creates a trainer, resolving each team member via the
// PokeAPI.
// @Summary Create trainer
// @Description Creates a trainer; every team member name is resolved against the PokeAPI before anything is written.
// @Tags trainers
// @Accept json
// @Produce json
// @Param trainer body model.TrainerInput true "Trainer to create"
// @Success 201 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /trainers [post]
func (h *Handler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var in model.TrainerInput
	if err := decodeBody(r, &in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if err := validate.Struct(in); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	trainer, err := h.trainers.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusCreated, trainer, "Trainer created successfully.")
}

// GetTrainers lists all trainers.
// @Summary List trainers
// @Tags trainers
// @Produce json
// @Success 200 {object} respond.SuccessEnvelope
// @Router /trainers [get]
func (h *Handler) GetTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.trainers.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, trainers, "")
}

// GetTrainer returns one trainer by id.
// @Summary Get trainer
// @Tags trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /trainers/{id} [get]
func (h *Handler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	trainer, err := h.trainers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, trainer, "")
}

// UpdateTrainer merge-patches a trainer.
// @Summary Update trainer
// @Tags trainers
// @Accept json
// @Produce json
// @Param id path string true "Trainer ID"
// @Param trainer body model.TrainerUpdate true "Fields to update"
// @Success 200 {object} respond.SuccessEnvelope
// @Failure 400 {object} map[string]string
// @Failure 404 {object} respond.ErrorEnvelope
// @Router /trainers/{id} [put]
func (h *Handler) UpdateTrainer(w http.ResponseWriter, r *http.Request) {
	var in model.TrainerUpdate
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

	trainer, err := h.trainers.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Success(w, http.StatusOK, trainer, "Trainer updated successfully.")
}

// DeleteTrainer removes a trainer.
// @Summary Delete trainer
// @Tags trainers
// @Param id path string true "Trainer ID"
// @Success 204
// @Router /trainers/{id} [delete]
func (h *Handler) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	if err := h.trainers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.NoContent(w)
}
