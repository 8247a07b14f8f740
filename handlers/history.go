package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmapp/checkbackend/models"
	"github.com/nmapp/checkbackend/repository"
)

type recordHistoryRequest struct {
	UserID   uint      `json:"userId"`
	Type     string    `json:"type"`
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
}

// RecordHistory persists one download event. fromDate/toDate are whatever
// range the client asked for; no ordering between them is enforced.
func (h *Handler) RecordHistory(c *gin.Context) {
	var body recordHistoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId"})
		return
	}
	if body.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing type"})
		return
	}
	if body.FromDate.IsZero() || body.ToDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fromDate or toDate"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.store.Users.FindByID(ctx, body.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User does not exist"})
			return
		}
		serverError(c, "failed to look up user", err)
		return
	}

	record := models.DownloadHistory{
		UserID:   body.UserID,
		Type:     body.Type,
		FromDate: body.FromDate,
		ToDate:   body.ToDate,
	}
	if err := h.store.History.Create(ctx, &record); err != nil {
		serverError(c, "failed to record history", err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) ListHistory(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}
	// Any integer is a valid query; ids that cannot own records just have an
	// empty history.
	if userID <= 0 {
		c.JSON(http.StatusOK, []models.DownloadHistory{})
		return
	}

	records, err := h.store.History.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		serverError(c, "failed to list history", err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// ClearHistory wipes every user's records. Left unscoped and unauthenticated
// for compatibility with the existing API contract.
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.store.History.DeleteAll(c.Request.Context()); err != nil {
		serverError(c, "failed to clear history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "History cleared"})
}

func (h *Handler) DeleteHistoryRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	if err := h.store.History.DeleteByID(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		serverError(c, "failed to delete record", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
