package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "financiamento_xpto/internal/adapter/http/dto/request"
	response "financiamento_xpto/internal/adapter/http/dto/response"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase"
	"financiamento_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler exposes the simulation wizard session lifecycle: create,
// read, section updates, step transitions, what-if recompute and save.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.CreateSession(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	draft, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) UpdatePersonal(c *gin.Context) {
	var payload request.PersonalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.UpdatePersonal(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.UpdateVehicle(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) UpdateIntent(c *gin.Context) {
	var payload request.IntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.UpdateIntent(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// Advance moves the session to the next step, running the current step's gate
// first. Entering the result step triggers the financial computation.
func (h *WizardHandler) Advance(c *gin.Context) {
	draft, err := h.usecase.Advance(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) Back(c *gin.Context) {
	var payload request.BackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Back(c.Request.Context(), c.Param("session_id"), entities.WizardStep(payload.Step))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) Restart(c *gin.Context) {
	draft, err := h.usecase.Restart(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// Recompute reruns the calculation on the result step, optionally overriding
// down payment and term from the request body. An empty body is accepted.
func (h *WizardHandler) Recompute(c *gin.Context) {
	var payload request.RecomputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !isEmptyBodyError(err) {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Recompute(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) Save(c *gin.Context) {
	stored, draft, err := h.usecase.Save(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SaveResponse{
		SimulationID: stored.ID,
		Draft:        response.FromDraft(draft),
	})
}

func isEmptyBodyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "EOF")
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidDocumentKind),
		errors.Is(err, usecase.ErrInvalidSelection),
		errors.Is(err, usecase.ErrInvalidVehicleKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepIncomplete):
		return pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Current step is missing required fields", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrWrongStep):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed on the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySaved):
		return pkg.NewDomainErrorSimple("ALREADY_SAVED", "Simulation already saved without changes", http.StatusConflict)
	case errors.Is(err, usecase.ErrSimulationUnsaveable):
		return pkg.NewDomainErrorSimple("NOT_SAVEABLE", "Simulation has no computed result to save", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrComputeFailed):
		return pkg.NewDomainErrorSimple("COMPUTE_FAILED", "Unable to compute the simulation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPricingLevelUnavailable):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing source is unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
