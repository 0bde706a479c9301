package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/httpresp"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	ucSession "github.com/studysched/tutor-scheduler/internal/usecase/session"
)

type CalendarHandler struct {
	monthUC *ucSession.MonthCalendar
}

func NewCalendarHandler(monthUC *ucSession.MonthCalendar) *CalendarHandler {
	return &CalendarHandler{monthUC: monthUC}
}

// Month serves the tutor's month grid. Navigation is just another call with
// a shifted (year, month) pair.
func (h *CalendarHandler) Month(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Year must be numeric.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be numeric.")
		return
	}

	compact := c.Query("compact") == "true"
	selected := c.Query("selected")

	grid, err := h.monthUC.Execute(c.Request.Context(), tutorID, year, month, compact, selected)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, grid)
}
