package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

// LogTranscript runs the transcript pipeline. Returns 201 when entries were
// persisted, 409 with the pending entries and warnings when duplicates were
// detected and not yet confirmed, 422 when nothing was recognized.
func (h *LogController) LogTranscript(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Transcript        string `json:"transcript" binding:"required"`
		Recording         string `json:"recording"` // base64 data URL, optional
		ConfirmDuplicates bool   `json:"confirm_duplicates"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	recordingURL := ""
	if body.Recording != "" {
		recordingURL, err = utils.UploadRecording(body.Recording, userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	res, err := h.Svc.LogTranscript(c.Request.Context(), *user, services.LogRequest{
		Transcript:        body.Transcript,
		RecordingURL:      recordingURL,
		ConfirmDuplicates: body.ConfirmDuplicates,
	})
	if err != nil {
		if errors.Is(err, services.ErrNothingRecognized) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing recognized, please re-record"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !res.Persisted {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *LogController) ListFoodEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.Svc.ListFoodEntries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LogController) ListWorkoutEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.Svc.ListWorkoutEntries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LogController) DeleteFoodEntry(c *gin.Context) {
	h.deleteEntry(c, h.Svc.DeleteFoodEntry)
}

func (h *LogController) DeleteWorkoutEntry(c *gin.Context) {
	h.deleteEntry(c, h.Svc.DeleteWorkoutEntry)
}

func (h *LogController) deleteEntry(c *gin.Context, del func(ctx context.Context, userID, entryID uint) error) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := del(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
