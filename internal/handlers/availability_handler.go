package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/httpresp"
	usecase "github.com/bookeasy-app/booking-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	availability *usecase.GetAvailability
	listServices *usecase.ListServices
}

func NewAvailabilityHandler(
	availability *usecase.GetAvailability,
	listServices *usecase.ListServices,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		listServices: listServices,
	}
}

// GET /availability/dates
func (h *AvailabilityHandler) ListDates(c *gin.Context) {
	httpresp.List(c, h.availability.Dates(c.Request.Context()))
}

// GET /availability/slots?service_id=X&date=2006-01-02
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	serviceID := c.Query("service_id")
	dateStr := c.Query("date")

	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "invalid_request", "service_id and date are required")
		return
	}

	day, err := parseDay(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	service, err := h.findService(c, serviceID)
	if err != nil {
		httperr.BadGateway(c, httperr.CodeAvailabilityUnavailable,
			"the scheduling provider could not be reached")
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "no such service")
		return
	}

	date, ok := h.dateInWindow(c, day)
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidSelection,
			"date is outside the booking window")
		return
	}

	slots, err := h.availability.Slots(c.Request.Context(), *service, date)
	if err != nil {
		httperr.BadGateway(c, httperr.CodeAvailabilityUnavailable,
			"availability could not be fetched")
		return
	}

	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) findService(
	c *gin.Context,
	serviceID string,
) (*domain.Service, error) {

	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		return nil, err
	}

	for i := range services {
		if services[i].ID == serviceID {
			return &services[i], nil
		}
	}
	return nil, nil
}

// dateInWindow matches the requested day against the rolling window so the
// is_today / is_tomorrow flags come from one place.
func (h *AvailabilityHandler) dateInWindow(
	c *gin.Context,
	day time.Time,
) (domain.DateOption, bool) {

	for _, d := range h.availability.Dates(c.Request.Context()) {
		if sameDay(d.Date, day) {
			return d, true
		}
	}
	return domain.DateOption{}, false
}
