package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/models"
	"github.com/bilabonnement/rental-service/internal/repository"
)

type Handler struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHandler(repo *repository.Repository, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Home godoc
// @Summary API welcome route
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":       "Welcome to RentalService API",
		"documentation": "/swagger/index.html",
	})
}

// CreateRental godoc
// @Summary Create a new rental contract
// @Description Creates a rental contract. All seven fields are required.
// @Tags rentals
// @Accept json
// @Produce json
// @Param rental body models.CreateContractInput true "Contract fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rentals [post]
func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var input models.CreateContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Presence check happens here, before the repository is touched.
	if err := input.Validate(); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := h.repo.Create(r.Context(), input)
	if err != nil {
		h.respondRepositoryError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Rental contract created",
		"rental":  rental,
	})
}

// ListRentals godoc
// @Summary List all rental contracts
// @Description Returns every rental contract. An empty store yields 200 with an empty array.
// @Tags rentals
// @Produce json
// @Success 200 {array} models.RentalContract
// @Failure 500 {object} map[string]string
// @Router /rentals/all [get]
func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.repo.List(r.Context())
	if err != nil {
		h.respondRepositoryError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rentals)
}

// GetRental godoc
// @Summary Get a rental contract by id
// @Tags rentals
// @Produce json
// @Param id path int true "Contract id"
// @Success 200 {object} models.RentalContract
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *Handler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, h.log, http.StatusNotFound, "Rental contract not found")
		return
	}

	rental, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.respondRepositoryError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rental)
}

// UpdateRental godoc
// @Summary Partially update a rental contract
// @Description Applies only the supplied fields; unknown keys are ignored.
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path int true "Contract id"
// @Param rental body models.ContractUpdate true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rentals/{id} [patch]
func (h *Handler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, h.log, http.StatusNotFound, "Rental contract not found")
		return
	}

	var update models.ContractUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.repo.UpdatePartial(r.Context(), id, update); err != nil {
		h.respondRepositoryError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Rental contract updated"})
}

// DeleteRental godoc
// @Summary Delete a rental contract
// @Tags rentals
// @Produce json
// @Param id path int true "Contract id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rentals/{id} [delete]
func (h *Handler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, h.log, http.StatusNotFound, "Rental contract not found")
		return
	}

	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		h.respondRepositoryError(w, err)
		return
	}
	if !deleted {
		respondWithError(w, h.log, http.StatusNotFound, "Rental contract not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Rental contract deleted"})
}

// respondRepositoryError is the single place repository errors become status
// codes. Internal detail never crosses the boundary.
func (h *Handler) respondRepositoryError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var constraintErr *repository.ConstraintError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondWithError(w, h.log, http.StatusNotFound, "Rental contract not found")
	case errors.Is(err, repository.ErrNoFields):
		respondWithError(w, h.log, http.StatusBadRequest, "No valid fields to update")
	case errors.As(err, &validationErr):
		respondWithError(w, h.log, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &constraintErr):
		respondWithError(w, h.log, http.StatusBadRequest, "Contract data violates schema constraints")
	default:
		h.log.Error("repository failure", zap.Error(err))
		respondWithError(w, h.log, http.StatusInternalServerError, "Internal server error")
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func respondWithError(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	log.Warn("request failed", zap.Int("status", status), zap.String("error", message))
	respondWithJSON(w, status, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
