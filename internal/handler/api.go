package handler

import (
	"errors"
	"net/http"

	"github.com/sasank-sasi/Vertx/internal/dataset"
	"github.com/sasank-sasi/Vertx/internal/email"
	"github.com/sasank-sasi/Vertx/internal/matching"
	"github.com/sasank-sasi/Vertx/internal/models"
	"github.com/sasank-sasi/Vertx/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests
type Handler struct {
	founderMatcher  *matching.FounderMatcher
	investorMatcher *matching.InvestorMatcher
	emails          *email.Pipeline
	history         *repository.CommunicationRepository
	foundersPath    string
	investorsPath   string
	logger          *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	founderMatcher *matching.FounderMatcher,
	investorMatcher *matching.InvestorMatcher,
	emails *email.Pipeline,
	history *repository.CommunicationRepository,
	foundersPath, investorsPath string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		founderMatcher:  founderMatcher,
		investorMatcher: investorMatcher,
		emails:          emails,
		history:         history,
		foundersPath:    foundersPath,
		investorsPath:   investorsPath,
		logger:          logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/health", h.HealthCheck)

	match := r.Group("/match")
	{
		match.POST("/founder-to-founder", h.MatchFounders)
		match.POST("/founder-to-investor", h.MatchInvestors)
	}

	mail := r.Group("/email")
	{
		mail.POST("/generate", h.GenerateEmails)
		mail.POST("/send", h.SendEmail)
	}

	r.GET("/communications", h.GetCommunications)
	r.GET("/communications/stats", h.GetCommunicationStats)
}

// Home is the liveness message
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Founder Matching API"})
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "founder-matching-api",
		"version": "1.0.0",
	})
}

// MatchFounders handles founder-to-founder matching
func (h *Handler) MatchFounders(c *gin.Context) {
	var founder models.FounderInput
	if err := c.ShouldBindJSON(&founder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Processing founder matching request",
		zap.String("company", founder.CompanyName))

	pool, err := dataset.LoadFounders(h.foundersPath)
	if err != nil {
		h.logger.Error("Failed to load founders dataset", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Founders dataset not found"})
		return
	}

	matches, err := h.founderMatcher.Match(c.Request.Context(), founder, pool)
	if err != nil {
		if errors.Is(err, models.ErrNoMatches) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No matches found"})
			return
		}
		h.logger.Error("Founder matching failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "matching failed"})
		return
	}

	h.logger.Info("Founder matching completed",
		zap.String("company", founder.CompanyName),
		zap.Int("matches", len(matches)))

	c.JSON(http.StatusOK, matches)
}

// MatchInvestors handles founder-to-investor matching
func (h *Handler) MatchInvestors(c *gin.Context) {
	var founder models.FounderInput
	if err := c.ShouldBindJSON(&founder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Processing investor matching request",
		zap.String("company", founder.CompanyName))

	pool, err := dataset.LoadInvestors(h.investorsPath)
	if err != nil {
		h.logger.Error("Failed to load investors dataset", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Investors dataset not found"})
		return
	}

	matches, err := h.investorMatcher.Match(c.Request.Context(), founder, pool)
	if err != nil {
		if errors.Is(err, models.ErrNoMatches) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No matches found"})
			return
		}
		h.logger.Error("Investor matching failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "matching failed"})
		return
	}

	h.logger.Info("Investor matching completed",
		zap.String("company", founder.CompanyName),
		zap.Int("matches", len(matches)))

	c.JSON(http.StatusOK, matches)
}

// GenerateEmailsRequest is the body for POST /email/generate
type GenerateEmailsRequest struct {
	Founder  models.FounderProfile     `json:"founder" binding:"required"`
	Investor models.InvestorProfile    `json:"investor" binding:"required"`
	Custom   *models.CustomInstruction `json:"custom,omitempty"`
}

// GenerateEmails produces email variants with verification results
func (h *Handler) GenerateEmails(c *gin.Context) {
	var req GenerateEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drafts := h.emails.Generate(c.Request.Context(), req.Founder, req.Investor, req.Custom)

	c.JSON(http.StatusOK, gin.H{
		"variants": drafts,
		"total":    len(drafts),
	})
}

// SendEmailRequest is the body for POST /email/send
type SendEmailRequest struct {
	Founder  models.FounderProfile  `json:"founder" binding:"required"`
	Investor models.InvestorProfile `json:"investor" binding:"required"`
	Email    models.EmailDraft      `json:"email" binding:"required"`
}

// SendEmail delivers a chosen draft and logs the attempt
func (h *Handler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sent, message := h.emails.Send(req.Founder, req.Investor, req.Email)

	c.JSON(http.StatusOK, gin.H{
		"sent":    sent,
		"message": message,
	})
}

// GetCommunications returns the send history
func (h *Handler) GetCommunications(c *gin.Context) {
	entries, err := h.history.GetAllCommunications()
	if err != nil {
		h.logger.Error("Failed to get communications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get communications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"communications": entries,
		"total":          len(entries),
	})
}

// GetCommunicationStats returns send statistics
func (h *Handler) GetCommunicationStats(c *gin.Context) {
	stats, err := h.history.GetStats()
	if err != nil {
		h.logger.Error("Failed to get stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
