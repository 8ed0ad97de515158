package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/httpresp"
	usecase "github.com/bookeasy-app/booking-api/internal/usecase/booking"
)

type CatalogHandler struct {
	listServices *usecase.ListServices
}

func NewCatalogHandler(listServices *usecase.ListServices) *CatalogHandler {
	return &CatalogHandler{listServices: listServices}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.BadGateway(c, httperr.CodeAvailabilityUnavailable,
			"the scheduling provider could not be reached")
		return
	}

	httpresp.List(c, services)
}
