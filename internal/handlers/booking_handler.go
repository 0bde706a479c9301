package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/httpresp"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	ucBooking "github.com/studysched/tutor-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	bookUC    *ucBooking.BookSession
	confirmUC *ucBooking.ConfirmBooking
	cancelUC  *ucBooking.CancelBooking
	listUC    *ucBooking.ListMyBookings
}

func NewBookingHandler(
	bookUC *ucBooking.BookSession,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListMyBookings,
) *BookingHandler {
	return &BookingHandler{
		bookUC:    bookUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		listUC:    listUC,
	}
}

func (h *BookingHandler) Book(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_session_id", "Session id must be numeric.")
		return
	}

	booking, err := h.bookUC.Execute(c.Request.Context(), studentID, uint(sessionID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, booking)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	booking, err := h.confirmUC.Execute(c.Request.Context(), tutorID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	booking, err := h.cancelUC.Execute(c.Request.Context(), studentID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.Execute(c.Request.Context(), studentID, c.QueryArray("status"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}
