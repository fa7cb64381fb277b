package profile_handler

import (
	"fmt"
	"net/http"

	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/dto"
	httpError "github.com/IT-Nick/heritage/pkg/http"
)

// ProfileHandler GET /profile
type ProfileHandler struct {
	contentService *contentService.ContentService
}

func NewProfileHandler(contentService *contentService.ContentService) *ProfileHandler {
	return &ProfileHandler{contentService: contentService}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	profile, err := h.contentService.GetProfile(r.Context())
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get profile: %v", err))
		return
	}

	httpError.JSONResponse(w, http.StatusOK, dto.ProfileResponse{
		Profile:              *profile,
		UnlockedAchievements: contentService.UnlockedCount(profile.Achievements),
		TotalAchievements:    len(profile.Achievements),
	})
}
