package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	"github.com/studysched/tutor-scheduler/internal/models"
	"github.com/studysched/tutor-scheduler/internal/storage"
	"github.com/studysched/tutor-scheduler/internal/timezone"
)

const maxAvatarUpload = 5 << 20 // 5 MiB

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
	audit   *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, avatars: avatars, audit: audit}
}

type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "user_not_found"})
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"details":    err.Error(),
		})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error_code": "invalid_timezone"})
			return
		}
		user.Timezone = *req.Timezone
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": "missing_avatar_file"})
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), userID, http.MaxBytesReader(c.Writer, file, maxAvatarUpload))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_code": "failed_to_update_user"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "avatar_updated",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
