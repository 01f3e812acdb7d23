package handlers

import (
	"errors"
	"net/http"

	response "financiamento_xpto/internal/adapter/http/dto/response"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase"
	"financiamento_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the vehicle valuation cascade: brands, models per
// brand, model-years per model and the final price lookup. Each level is an
// independent call so a failure in one never blocks retrying just that level.

type CatalogHandler struct {
	usecase usecase.IPricingUseCase
}

func NewCatalogHandler(uc usecase.IPricingUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	kind := entities.VehicleKind(c.Param("kind"))

	brands, err := h.usecase.ListBrands(c.Request.Context(), kind)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogRefs(brands))
}

func (h *CatalogHandler) ListModels(c *gin.Context) {
	kind := entities.VehicleKind(c.Param("kind"))

	models, err := h.usecase.ListModels(c.Request.Context(), kind, c.Param("brand_code"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogRefs(models))
}

func (h *CatalogHandler) ListModelYears(c *gin.Context) {
	kind := entities.VehicleKind(c.Param("kind"))

	years, err := h.usecase.ListModelYears(c.Request.Context(), kind, c.Param("brand_code"), c.Param("model_code"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogRefs(years))
}

func (h *CatalogHandler) ResolvePrice(c *gin.Context) {
	kind := entities.VehicleKind(c.Param("kind"))

	entry, err := h.usecase.ResolvePrice(c.Request.Context(), kind, c.Param("brand_code"), c.Param("model_code"), c.Param("year_code"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleKind), errors.Is(err, usecase.ErrInvalidCatalogCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingLevelUnavailable):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing source is unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
