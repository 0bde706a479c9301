package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studysched/tutor-scheduler/internal/middleware"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type CourseHandler struct {
	db *gorm.DB
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{db: db}
}

// --------- Requests ---------

type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CourseHandler) List(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("tutor_id = ?", tutorID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var courses []models.Course
	if err := q.
		Order("id ASC").
		Find(&courses).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_list_courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Create(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"details":    err.Error(),
		})
		return
	}

	course := models.Course{
		TutorID:     tutorID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_create_course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	id := c.Param("id")

	var course models.Course
	if err := h.db.
		Where("id = ? AND tutor_id = ?", id, tutorID).
		First(&course).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error_code": "course_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_get_course"})
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"details":    err.Error(),
		})
		return
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.DurationMin != nil {
		course.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		course.Active = *req.Active
	}

	if err := h.db.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_update_course"})
		return
	}

	c.JSON(http.StatusOK, course)
}
