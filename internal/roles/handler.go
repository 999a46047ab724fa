package roles

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/match"
	"jobsearch-backend/internal/profiles"
	"jobsearch-backend/internal/shared/server/middleware"
	"jobsearch-backend/internal/shared/server/respond"
)

// ProfileResolver loads the stored candidate profile for a user. Used as
// the fallback when a request carries no inline profile.
type ProfileResolver interface {
	MatchProfileForUser(ctx context.Context, userID string) (match.Profile, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Profiles ProfileResolver
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resolver ProfileResolver) *Handler {
	return &Handler{Svc: svc, Profiles: resolver}
}

// RegisterRoutes attaches role routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/roles/suggest", h.suggest)
	rg.POST("/roles/analyze", h.analyze)
	rg.GET("/roles/trending", h.trending)
	rg.GET("/roles/:title", h.get)
	rg.POST("/roles/:title/gap-analysis", h.gapAnalysis)
}

type suggestRequest struct {
	UserProfile *profiles.Profile `json:"userProfile"`
}

func (h *Handler) suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile := h.resolveProfile(c, req.UserProfile)
	if profile == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user profile with skills is required", nil)
		return
	}

	recs, err := h.Svc.Suggest(c.Request.Context(), *profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to suggest roles", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, recommendationResponse(rec))
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"recommendations": resp,
		"total":           len(resp),
	})
}

type analyzeRequest struct {
	Skills      []string          `json:"skills"`
	UserProfile *profiles.Profile `json:"userProfile"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	skills := req.Skills
	if len(skills) == 0 {
		if profile := h.resolveProfile(c, req.UserProfile); profile != nil {
			skills = profile.SkillNames
		}
	}
	if len(skills) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "skills are required", nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), skills)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze skills", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

type gapAnalysisRequest struct {
	UserProfile *profiles.Profile `json:"userProfile"`
}

func (h *Handler) gapAnalysis(c *gin.Context) {
	var req gapAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile := h.resolveProfile(c, req.UserProfile)
	if profile == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user profile with skills is required", nil)
		return
	}

	analysis, err := h.Svc.GapAnalysis(c.Request.Context(), c.Param("title"), profile.SkillNames)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "role not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate gap analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"role":                  roleResponse(analysis.Role),
		"missingRequiredSkills": analysis.MissingRequiredSkills,
		"missingRelatedSkills":  analysis.MissingRelatedSkills,
		"matchPercentage":       analysis.MatchPercentage,
	})
}

func (h *Handler) get(c *gin.Context) {
	role, err := h.Svc.Get(c.Request.Context(), c.Param("title"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "role not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch role", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, role)
}

func (h *Handler) trending(c *gin.Context) {
	roles, err := h.Svc.Trending(c.Request.Context(), c.Query("industry"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list trending roles", nil)
		return
	}
	respond.JSON(c, http.StatusOK, roles)
}

func (h *Handler) resolveProfile(c *gin.Context, inline *profiles.Profile) *match.Profile {
	if inline != nil {
		mp := inline.MatchProfile()
		return &mp
	}
	if h.Profiles == nil {
		return nil
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return nil
	}
	mp, err := h.Profiles.MatchProfileForUser(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return &mp
}

func recommendationResponse(rec match.Recommendation) gin.H {
	resp := roleResponse(rec.Role)
	resp["source"] = rec.Source
	resp["marketDemand"] = rec.Market.Demand
	resp["averageSalary"] = rec.Market.AverageSalary
	return resp
}

func roleResponse(role match.Role) gin.H {
	return gin.H{
		"title":           role.Title,
		"description":     role.Description,
		"requiredSkills":  role.RequiredSkills,
		"relatedSkills":   role.RelatedSkills,
		"averageSalary":   role.AverageSalary,
		"industry":        role.Industry,
		"experienceLevel": role.ExperienceLevel,
	}
}
