// ABOUTME: Request handlers for login, report CRUD, and derived views.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/logger"
	"github.com/harperreed/weekly/internal/models"
	"github.com/harperreed/weekly/internal/trend"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Session   auth.Session `json:"session"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "username and password are required")
		return
	}

	if err := s.credential.Verify(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			abort(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		logger.Warn().Str("username", req.Username).Msg("login failed")
		abort(c, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	token, sess, err := s.sessions.Issue(req.Username)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info().Str("username", sess.Username).Str("session_id", sess.ID).Msg("login")
	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: sess.ExpiresAt, Session: sess})
}

func (s *Server) handleSession(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		abort(c, http.StatusUnauthorized, "no session")
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleLogout(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		abort(c, http.StatusUnauthorized, "no session")
		return
	}
	s.sessions.Revoke(sess)
	logger.Info().Str("username", sess.Username).Str("session_id", sess.ID).Msg("logout")
	c.Status(http.StatusNoContent)
}

type weekResponse struct {
	Date   models.Date          `json:"date"`
	Monday models.Date          `json:"monday"`
	Sunday models.Date          `json:"sunday"`
	Report *models.WeeklyReport `json:"report"`
}

// handleWeek returns the week containing ?date= (default today) and its report, if any.
func (s *Server) handleWeek(c *gin.Context) {
	day := models.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			abort(c, http.StatusBadRequest, err.Error())
			return
		}
		day = d
	}

	monday, sunday := models.WeekBounds(day)
	resp := weekResponse{Date: day, Monday: monday, Sunday: sunday}
	report, err := s.repo.GetReportByWeek(monday)
	switch {
	case err == nil:
		resp.Report = report
	case !isNotFound(err):
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListReports(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	var (
		reports []*models.WeeklyReport
		err     error
	)
	if limit > 0 {
		reports, err = s.repo.ListRecentReports(limit)
	} else {
		reports, err = s.repo.ListReports()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (s *Server) handleCreateReport(c *gin.Context) {
	var in models.ReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abort(c, http.StatusBadRequest, "invalid report body: "+err.Error())
		return
	}

	id, err := s.repo.CreateReport(in)
	if err != nil {
		fail(c, err)
		return
	}
	report, err := s.repo.GetReport(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (s *Server) handleGetReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := s.repo.GetReport(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleUpdateReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.ReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abort(c, http.StatusBadRequest, "invalid report body: "+err.Error())
		return
	}

	if err := s.repo.UpdateReport(id, in); err != nil {
		fail(c, err)
		return
	}
	report, err := s.repo.GetReport(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleDeleteReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := s.repo.DeleteReport(id)
	if err != nil {
		fail(c, err)
		return
	}
	if !deleted {
		abort(c, http.StatusNotFound, "report "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCompare(c *gin.Context) {
	weeks, ok := queryInt(c, "weeks", trend.DefaultWindow)
	if !ok {
		return
	}
	if weeks <= 0 {
		abort(c, http.StatusBadRequest, "weeks must be positive")
		return
	}
	reports, err := s.repo.ListRecentReports(weeks)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks, "rows": trend.Recent(reports, weeks)})
}

func (s *Server) handleSummary(c *gin.Context) {
	reports, err := s.repo.ListReports()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":  trend.Summarize(reports),
		"headline": trend.Headline(reports),
	})
}

func (s *Server) handleTrend(c *gin.Context) {
	raw := c.DefaultQuery("metric", string(models.MetricOnlineRequirements))
	if !models.IsValidMetric(raw) {
		abort(c, http.StatusBadRequest, "unknown metric: "+raw)
		return
	}
	m := models.Metric(raw)

	reports, err := s.repo.ListReports()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metric": m,
		"label":  m.Label(),
		"points": trend.Series(reports, m),
	})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abort(c, http.StatusBadRequest, "invalid report id")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		abort(c, http.StatusBadRequest, "invalid "+key)
		return 0, false
	}
	return n, true
}
