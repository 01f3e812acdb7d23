package routes

import (
	"financiamento_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSimulations = "/simulations"
	PathCatalog     = "/catalog"
	PathDocuments   = "/documents"
)

func addSimulationRoutes(
	rg *gin.RouterGroup,
	wizardHandler *handlers.WizardHandler,
	catalogHandler *handlers.CatalogHandler,
	documentHandler *handlers.DocumentHandler,
	simulationHandler *handlers.SimulationHandler,
) {
	simulations := rg.Group(PathSimulations)
	{
		simulations.POST("/sessions", wizardHandler.CreateSession)
		simulations.GET("/sessions/:session_id", wizardHandler.GetSession)
		simulations.PUT("/sessions/:session_id/personal", wizardHandler.UpdatePersonal)
		simulations.PUT("/sessions/:session_id/vehicle", wizardHandler.UpdateVehicle)
		simulations.PUT("/sessions/:session_id/intent", wizardHandler.UpdateIntent)
		simulations.POST("/sessions/:session_id/advance", wizardHandler.Advance)
		simulations.POST("/sessions/:session_id/back", wizardHandler.Back)
		simulations.POST("/sessions/:session_id/restart", wizardHandler.Restart)
		simulations.POST("/sessions/:session_id/compute", wizardHandler.Recompute)
		simulations.POST("/sessions/:session_id/save", wizardHandler.Save)

		simulations.GET("", simulationHandler.ListByListingID)
		simulations.GET("/:simulation_id", simulationHandler.GetByID)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/:kind/brands", catalogHandler.ListBrands)
		catalog.GET("/:kind/brands/:brand_code/models", catalogHandler.ListModels)
		catalog.GET("/:kind/brands/:brand_code/models/:model_code/years", catalogHandler.ListModelYears)
		catalog.GET("/:kind/brands/:brand_code/models/:model_code/years/:year_code/price", catalogHandler.ResolvePrice)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("/validate", documentHandler.Validate)
	}
}
