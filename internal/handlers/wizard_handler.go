package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/httpresp"
	usecase "github.com/bookeasy-app/booking-api/internal/usecase/booking"
	"github.com/bookeasy-app/booking-api/internal/wizard"
)

// WizardHandler exposes the booking flow over HTTP. Each session is owned by
// the user that started it; a session id from another user reads as missing.
type WizardHandler struct {
	manager      *wizard.Manager
	listServices *usecase.ListServices
}

func NewWizardHandler(
	manager *wizard.Manager,
	listServices *usecase.ListServices,
) *WizardHandler {
	return &WizardHandler{
		manager:      manager,
		listServices: listServices,
	}
}

// --------- Requests ---------

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	Start time.Time `json:"start" binding:"required"`
}

// --------- Handlers ---------

// POST /wizard
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthenticated, "login required")
		return
	}

	sessionID, wiz, err := h.manager.Start(
		c.Request.Context(),
		strconv.FormatUint(uint64(userID), 10),
	)
	if err != nil {
		httperr.Internal(c, "session_not_created", "could not start a booking session")
		return
	}

	httpresp.Created(c, gin.H{
		"session_id": sessionID,
		"status":     wiz.State(),
	})
}

// GET /wizard/:id
func (h *WizardHandler) GetState(c *gin.Context) {
	snap, ok := h.ownedSession(c)
	if !ok {
		return
	}

	httpresp.OK(c, statePayload(snap))
}

// POST /wizard/:id/service
func (h *WizardHandler) SelectService(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service, err := h.findService(c, req.ServiceID)
	if err != nil {
		httperr.BadGateway(c, httperr.CodeAvailabilityUnavailable,
			"the scheduling provider could not be reached")
		return
	}
	if service == nil {
		httperr.BadRequest(c, httperr.CodeInvalidSelection, "no such service")
		return
	}

	dates, err := h.manager.SelectService(c.Request.Context(), c.Param("id"), *service)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, dates)
}

// POST /wizard/:id/date
func (h *WizardHandler) SelectDate(c *gin.Context) {
	snap, ok := h.ownedSession(c)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	var date *domain.DateOption
	for i := range snap.Dates {
		if sameDay(snap.Dates[i].Date, day) {
			date = &snap.Dates[i]
			break
		}
	}
	if date == nil {
		httperr.BadRequest(c, httperr.CodeInvalidSelection,
			"date is outside the booking window")
		return
	}

	slots, err := h.manager.SelectDate(c.Request.Context(), c.Param("id"), *date)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}

// POST /wizard/:id/slots/refresh
func (h *WizardHandler) RefreshSlots(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}

	slots, err := h.manager.RefreshSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}

// POST /wizard/:id/time
func (h *WizardHandler) SelectTime(c *gin.Context) {
	snap, ok := h.ownedSession(c)
	if !ok {
		return
	}

	var req SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var slot *domain.TimeSlot
	for i := range snap.Slots {
		if snap.Slots[i].Start.Equal(req.Start) {
			slot = &snap.Slots[i]
			break
		}
	}
	if slot == nil {
		httperr.BadRequest(c, httperr.CodeInvalidSelection,
			"start does not match a listed slot")
		return
	}

	if err := h.manager.SelectTime(c.Request.Context(), c.Param("id"), *slot); err != nil {
		writeBusiness(c, err)
		return
	}

	snap, err := h.manager.Describe(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "session_not_found", "no such booking session")
		return
	}

	httpresp.OK(c, statePayload(snap))
}

// POST /wizard/:id/confirm
func (h *WizardHandler) Confirm(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}

	result, err := h.manager.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"status":  domain.StatusConfirmed,
		"booking": result,
	})
}

// POST /wizard/:id/cancel
func (h *WizardHandler) Cancel(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}

	if err := h.manager.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		httperr.NotFound(c, "session_not_found", "no such booking session")
		return
	}

	httpresp.OK(c, gin.H{"status": domain.StatusCancelled})
}

// --------- Helpers ---------

// ownedSession loads the session and enforces ownership. Sessions of other
// users are reported as not found, never as forbidden.
func (h *WizardHandler) ownedSession(c *gin.Context) (wizard.Snapshot, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthenticated, "login required")
		return wizard.Snapshot{}, false
	}

	snap, err := h.manager.Describe(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "session_not_found", "no such booking session")
		return wizard.Snapshot{}, false
	}

	if snap.UserID != strconv.FormatUint(uint64(userID), 10) {
		httperr.NotFound(c, "session_not_found", "no such booking session")
		return wizard.Snapshot{}, false
	}

	return snap, true
}

func (h *WizardHandler) findService(
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

func statePayload(snap wizard.Snapshot) gin.H {
	status := snap.Status
	if snap.Terminal != "" {
		status = snap.Terminal
	}

	return gin.H{
		"status":        status,
		"service":       snap.Service,
		"date":          snap.Date,
		"time":          snap.Time,
		"dates":         snap.Dates,
		"slots":         snap.Slots,
		"needs_refetch": snap.NeedsRefetch,
		"last_error":    snap.LastError,
		"booking":       snap.Result,
	}
}

// writeBusiness maps a business error to its HTTP status.
func writeBusiness(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case httperr.CodeInvalidSelection,
		httperr.CodeValidationFailed,
		httperr.CodeInvalidState:
		httperr.BadRequest(c, code, "")

	case httperr.CodeUnauthenticated:
		httperr.Unauthorized(c, code, "login required")

	case httperr.CodeSlotConflict,
		httperr.CodeSubmissionInFlight,
		httperr.CodeStaleAvailability:
		httperr.Conflict(c, code, "")

	case httperr.CodeNetworkError,
		httperr.CodeAvailabilityUnavailable:
		httperr.BadGateway(c, code, "")

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
