package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ops-tracker/internal/logger"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the admin dashboard: aggregated stats, chart summaries
// and AI-generated monthly reports.
type ReportHandler struct {
	reports *service.ReportService
	users   *service.UserService
	daily   *service.DailyService
}

func NewReportHandler(reports *service.ReportService, users *service.UserService, daily *service.DailyService) *ReportHandler {
	return &ReportHandler{reports: reports, users: users, daily: daily}
}

// GET /api/admin/stats?month=YYYY-MM
func (h *ReportHandler) Stats(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}
	ctx := c.Request.Context()
	users, err := h.users.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	updates, err := h.daily.ListForMonth(ctx, month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.BuildMonthlyStats(users, updates, month))
}

// GET /api/admin/users/:id/summary?month=YYYY-MM
func (h *ReportHandler) Summary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}
	updates, err := h.daily.ListForUser(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.BuildMonthSummary(updates))
}

// POST /api/admin/reports
func (h *ReportHandler) Generate(c *gin.Context) {
	var req model.ReportRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	user, err := h.users.Get(ctx, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	updates, err := h.daily.ListForUser(ctx, req.UserID, req.Month)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("report.generate", "uid", req.UserID, "month", req.Month, "updates", len(updates))
	content, err := h.reports.MonthlyReport(ctx, user.Name, req.Month, updates)
	if err != nil {
		logger.Error("report failed", "uid", req.UserID, "month", req.Month, "err", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ReportResponse{UserName: user.Name, Month: req.Month, Content: content})
}

type sseWriter struct {
	w http.Flusher
	f gin.ResponseWriter
}

func (s *sseWriter) event(name string, data interface{}) {
	j, _ := json.Marshal(data)
	fmt.Fprintf(s.f, "event: %s\ndata: %s\n\n", name, j)
	s.w.Flush()
}

func (s *sseWriter) token(t string) {
	s.event("token", map[string]string{"token": t})
}

func (s *sseWriter) fail(msg string) {
	s.event("error", map[string]string{"error": msg})
}

func (s *sseWriter) done() {
	s.event("done", map[string]string{})
}

// POST /api/admin/reports/stream
func (h *ReportHandler) Stream(c *gin.Context) {
	var req model.ReportRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	user, err := h.users.Get(ctx, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	updates, err := h.daily.ListForUser(ctx, req.UserID, req.Month)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(updates) == 0 {
		writeError(c, model.ErrNoDataForPeriod)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	sse := &sseWriter{w: c.Writer, f: c.Writer}

	logger.Info("report.stream", "uid", req.UserID, "month", req.Month, "updates", len(updates))
	if _, err := h.reports.StreamMonthlyReport(ctx, user.Name, req.Month, updates, sse.token); err != nil {
		logger.Error("report stream failed", "uid", req.UserID, "month", req.Month, "err", err)
		sse.fail("report generation failed, try again later")
	}
	sse.done()
}
