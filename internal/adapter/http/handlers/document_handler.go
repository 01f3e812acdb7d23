package handlers

import (
	"net/http"

	request "financiamento_xpto/internal/adapter/http/dto/request"
	response "financiamento_xpto/internal/adapter/http/dto/response"
	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
	errUnknownDocumentKind    = pkg.NewDomainErrorSimple("UNKNOWN_DOCUMENT_KIND", "Document kind must be individual or organization", http.StatusBadRequest)
)

// DocumentHandler offers standalone tax-document validation so the frontend
// can check a CPF or CNPJ as the user types, before any session exists.

type DocumentHandler struct{}

func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

func (h *DocumentHandler) Validate(c *gin.Context) {
	var payload request.ValidateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	kind := document.Kind(payload.Kind)
	if kind != document.KindIndividual && kind != document.KindOrganization {
		c.JSON(errUnknownDocumentKind.HTTPStatus, errUnknownDocumentKind.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ValidateDocumentResponse{
		Valid: document.Validate(payload.Document, kind),
		Kind:  string(kind),
	})
}
