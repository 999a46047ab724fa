package jobs

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

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/search", h.search)
	rg.POST("/jobs/match", h.match)
	rg.GET("/jobs/trending", h.trending)
	rg.GET("/jobs/:id", h.get)
}

type searchRequest struct {
	Query       string            `json:"query"`
	UserProfile *profiles.Profile `json:"userProfile"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
		return
	}

	profile := h.resolveProfile(c, req.UserProfile)

	results, err := h.Svc.Search(c.Request.Context(), req.Query, profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusBadGateway, "search_failed", "failed to search jobs", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"jobs":  results,
		"total": len(results),
	})
}

type matchRequest struct {
	JobID       string            `json:"jobId"`
	UserProfile *profiles.Profile `json:"userProfile"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.JobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobId is required", nil)
		return
	}

	profile := h.resolveProfile(c, req.UserProfile)
	if profile == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user profile is required", nil)
		return
	}

	posting, score, err := h.Svc.Match(c.Request.Context(), req.JobID, *profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to calculate match score", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"job":        posting,
		"matchScore": score,
	})
}

func (h *Handler) get(c *gin.Context) {
	posting, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, posting)
}

func (h *Handler) trending(c *gin.Context) {
	postings, err := h.Svc.Trending(c.Request.Context(), c.Query("industry"), c.Query("location"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list trending jobs", nil)
		return
	}
	respond.JSON(c, http.StatusOK, postings)
}

// resolveProfile prefers the inline profile from the request and falls back
// to the stored profile of the authenticated user.
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
