package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psy-match/internal/domain"
	"psy-match/internal/ranking"
	"psy-match/internal/service"
)

// RankingHandler expone las recomendaciones TOPSIS.
type RankingHandler struct {
	logger  *zap.Logger
	ranking *service.RankingService
}

func NewRankingHandler(logger *zap.Logger, rankingSvc *service.RankingService) *RankingHandler {
	return &RankingHandler{
		logger:  logger,
		ranking: rankingSvc,
	}
}

// ClientRecommendations maneja GET /clients/:userId/recommendations.
func (h *RankingHandler) ClientRecommendations(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
		return
	}

	matches, err := h.ranking.RankByClient(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Recommendations maneja POST /recommendations con un perfil ad hoc.
func (h *RankingHandler) Recommendations(c *gin.Context) {
	var req struct {
		Budget            float64            `json:"budget"`
		Issues            []string           `json:"issues"`
		Issue             string             `json:"issue"` // legacy: "a, b"
		PreferredLanguage string             `json:"preferred_language"`
		PreferredGender   string             `json:"preferred_gender"`
		PreferOnline      bool               `json:"prefer_online"`
		PreferOffline     bool               `json:"prefer_offline"`
		Weights           map[string]float64 `json:"weights"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommendations request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	issues := domain.NormalizeLabels(req.Issues)
	if len(issues) == 0 {
		issues = domain.SplitIssues(req.Issue)
	}
	profile := domain.PreferenceProfile{
		Budget:            req.Budget,
		Issues:            issues,
		PreferredLanguage: req.PreferredLanguage,
		PreferredGender:   req.PreferredGender,
		PreferOnline:      req.PreferOnline,
		PreferOffline:     req.PreferOffline,
	}

	matches, err := h.ranking.RankByProfile(c.Request.Context(), profile, req.Weights)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *RankingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
	case errors.Is(err, service.ErrInvalidProfile), errors.Is(err, ranking.ErrInvalidWeights):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("ranking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute recommendations"})
	}
}
