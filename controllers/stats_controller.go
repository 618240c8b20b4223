package controllers

import (
	"context"
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

const dateLayout = "2006-01-02"

func (h *StatsController) GetDaily(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := queryDate(c, "date", time.Now())
	if !ok {
		return
	}

	out, err := h.Svc.Daily(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetWeekly(c *gin.Context) {
	h.periodForRef(c, h.Svc.Weekly)
}

func (h *StatsController) GetMonthly(c *gin.Context) {
	h.periodForRef(c, h.Svc.Monthly)
}

func (h *StatsController) GetYearly(c *gin.Context) {
	h.periodForRef(c, h.Svc.Yearly)
}

// GetRange serves custom period summaries over an inclusive from/to range.
func (h *StatsController) GetRange(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, ok := queryDate(c, "from", time.Now().AddDate(0, 0, -6))
	if !ok {
		return
	}
	to, ok := queryDate(c, "to", time.Now())
	if !ok {
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	out, err := h.Svc.Period(c.Request.Context(), userID, models.PeriodCustom, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) periodForRef(c *gin.Context, fetch func(ctx context.Context, userID uint, ref time.Time) (models.PeriodSummary, error)) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ref, ok := queryDate(c, "date", time.Now())
	if !ok {
		return
	}

	out, err := fetch(c.Request.Context(), userID, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// queryDate parses an optional yyyy-mm-dd query parameter, writing the 400
// response itself on malformed input.
func queryDate(c *gin.Context, key string, fallback time.Time) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return fallback, true
	}
	d, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + " date"})
		return time.Time{}, false
	}
	return d, true
}
