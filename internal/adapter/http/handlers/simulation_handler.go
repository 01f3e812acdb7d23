package handlers

import (
	"errors"
	"net/http"

	response "financiamento_xpto/internal/adapter/http/dto/response"
	"financiamento_xpto/internal/usecase"
	"financiamento_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// SimulationHandler reads back persisted simulation snapshots: by id, or all
// snapshots recorded for a marketplace listing.

type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
}

func NewSimulationHandler(uc usecase.ISimulationUseCase) *SimulationHandler {
	return &SimulationHandler{usecase: uc}
}

func (h *SimulationHandler) GetByID(c *gin.Context) {
	sim, err := h.usecase.GetByID(c.Request.Context(), c.Param("simulation_id"))
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSimulation(sim))
}

func (h *SimulationHandler) ListByListingID(c *gin.Context) {
	sims, err := h.usecase.ListByListingID(c.Request.Context(), c.Query("listing_id"))
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSimulations(sims))
}

func mapSimulationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSimulationID), errors.Is(err, usecase.ErrInvalidListingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSimulationNotFound):
		return pkg.NewDomainErrorSimple("SIMULATION_NOT_FOUND", "Simulation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
