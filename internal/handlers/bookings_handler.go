package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookeasy-app/booking-api/internal/dto"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/httpresp"
	usecase "github.com/bookeasy-app/booking-api/internal/usecase/booking"
)

type BookingsHandler struct {
	list   *usecase.ListMyBookings
	cancel *usecase.CancelBooking
}

func NewBookingsHandler(
	list *usecase.ListMyBookings,
	cancel *usecase.CancelBooking,
) *BookingsHandler {
	return &BookingsHandler{
		list:   list,
		cancel: cancel,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// GET /me/bookings
func (h *BookingsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthenticated, "login required")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "bookings_list_failed", "could not list bookings")
		return
	}

	httpresp.OK(c, gin.H{
		"upcoming": dto.ToBookingList(out.Upcoming),
		"past":     dto.ToBookingList(out.Past),
	})
}

// PATCH /me/bookings/:id/cancel
func (h *BookingsHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthenticated, "login required")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "booking id must be numeric")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), userID, uint(bookingID), req.Reason)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "no such booking")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.Conflict(c, httperr.CodeInvalidState,
				"only confirmed bookings can be cancelled")
		case httperr.IsBusiness(err, httperr.CodeNetworkError):
			httperr.BadGateway(c, httperr.CodeNetworkError, "")
		default:
			httperr.Internal(c, "booking_cancel_failed", "could not cancel booking")
		}
		return
	}

	httpresp.OK(c, dto.ToBooking(b))
}
