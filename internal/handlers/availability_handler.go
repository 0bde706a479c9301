package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studysched/tutor-scheduler/internal/dto"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/httpresp"
	"github.com/studysched/tutor-scheduler/internal/middleware"
	ucAvailability "github.com/studysched/tutor-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	listUC   *ucAvailability.ListBlocks
	createUC *ucAvailability.CreateBlock
	updateUC *ucAvailability.UpdateBlock
	deleteUC *ucAvailability.DeleteBlock
	loc      *time.Location
}

func NewAvailabilityHandler(
	listUC *ucAvailability.ListBlocks,
	createUC *ucAvailability.CreateBlock,
	updateUC *ucAvailability.UpdateBlock,
	deleteUC *ucAvailability.DeleteBlock,
	loc *time.Location,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start_time" binding:"required"`
	End   string `json:"end_time" binding:"required"`
}

type UpdateBlockRequest struct {
	Date  *string `json:"date,omitempty"`
	Start *string `json:"start_time,omitempty"`
	End   *string `json:"end_time,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

// ListPublic serves a tutor's blocks to anyone browsing their profile.
func (h *AvailabilityHandler) ListPublic(c *gin.Context) {
	tutorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_tutor_id", "Tutor id must be numeric.")
		return
	}

	blocks, err := h.listUC.Execute(c.Request.Context(), uint(tutorID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Could not load availability.")
		return
	}

	httpresp.List(c, dto.MapAvailabilityBlocks(blocks, h.loc))
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	blocks, err := h.listUC.Execute(c.Request.Context(), tutorID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Could not load availability.")
		return
	}

	httpresp.List(c, dto.MapAvailabilityBlocks(blocks, h.loc))
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	block, blocks, err := h.createUC.Execute(c.Request.Context(), ucAvailability.CreateBlockInput{
		TutorID: tutorID,
		Date:    req.Date,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"block":  dto.MapAvailabilityBlock(*block, h.loc),
		"blocks": dto.MapAvailabilityBlocks(blocks, h.loc),
	})
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Block id must be numeric.")
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	block, blocks, err := h.updateUC.Execute(c.Request.Context(), ucAvailability.UpdateBlockInput{
		TutorID: tutorID,
		BlockID: uint(blockID),
		Date:    req.Date,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"block":  dto.MapAvailabilityBlock(*block, h.loc),
		"blocks": dto.MapAvailabilityBlocks(blocks, h.loc),
	})
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Block id must be numeric.")
		return
	}

	blocks, err := h.deleteUC.Execute(c.Request.Context(), tutorID, uint(blockID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"blocks": dto.MapAvailabilityBlocks(blocks, h.loc),
	})
}
