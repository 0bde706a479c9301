package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/httpresp"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	ucSession "github.com/studysched/tutor-scheduler/internal/usecase/session"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	publishUC *ucSession.PublishSession
	cancelUC  *ucSession.CancelSession
	listUC    *ucSession.ListSessions
}

func NewSessionHandler(
	publishUC *ucSession.PublishSession,
	cancelUC *ucSession.CancelSession,
	listUC *ucSession.ListSessions,
) *SessionHandler {
	return &SessionHandler{
		publishUC: publishUC,
		cancelUC:  cancelUC,
		listUC:    listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublishSessionRequest struct {
	CourseID uint   `json:"course_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start_time" binding:"required"`
	End      string `json:"end_time" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

// Browse serves the public session listing. When the caller is authenticated
// as a student, their active bookings shape each session's effective state.
func (h *SessionHandler) Browse(c *gin.Context) {
	var filter domain.SessionFilter

	if raw := c.Query("tutor_id"); raw != "" {
		tutorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_tutor_id", "Tutor id must be numeric.")
			return
		}
		filter.TutorID = uint(tutorID)
	}

	filter.Statuses = c.QueryArray("status")

	var viewerStudentID uint
	if idVal, ok := c.Get(middleware.ContextUserID); ok {
		if role, _ := c.Get(middleware.ContextUserRole); role == "student" {
			viewerStudentID = idVal.(uint)
		}
	}

	sessions, err := h.listUC.Execute(c.Request.Context(), filter, viewerStudentID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_sessions", "Could not load sessions.")
		return
	}

	httpresp.List(c, sessions)
}

func (h *SessionHandler) Publish(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req PublishSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.publishUC.Execute(c.Request.Context(), ucSession.PublishSessionInput{
		TutorID:  tutorID,
		CourseID: req.CourseID,
		Title:    req.Title,
		Date:     req.Date,
		Start:    req.Start,
		End:      req.End,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, session)
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_session_id", "Session id must be numeric.")
		return
	}

	session, err := h.cancelUC.Execute(c.Request.Context(), tutorID, uint(sessionID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, session)
}
