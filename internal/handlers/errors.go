package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studysched/tutor-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"validation_error":     "Missing or malformed fields.",
	"invalid_time_range":   "Start time must be before end time.",
	"invalid_image":        "The uploaded file is not a valid image.",
	"session_in_past":      "The session cannot start in the past.",
	"course_inactive":      "The course is no longer offered.",
	"booking_conflict":     "You already hold a booking for this session.",
	"time_conflict":        "The time range overlaps another session.",
	"session_not_bookable": "This session can no longer be booked.",
	"session_finished":     "This session has already finished.",
	"invalid_state":        "The current status does not allow this action.",
}

// writeBusinessError maps a domain error code to an HTTP status. Unknown
// errors stay opaque 500s.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request could not be completed."
	}

	switch code {
	case "validation_error", "invalid_time_range", "invalid_image",
		"session_in_past", "course_inactive":
		httperr.BadRequest(c, code, msg)
	case "booking_conflict", "time_conflict", "session_not_bookable",
		"session_finished", "invalid_state":
		httperr.Conflict(c, code, msg)
	case "block_not_found", "session_not_found", "booking_not_found",
		"course_not_found":
		httperr.NotFound(c, code, "Not found.")
	default:
		httperr.Internal(c, code, msg)
	}
}
