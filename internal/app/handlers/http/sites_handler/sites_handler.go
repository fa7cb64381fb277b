package sites_handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/dto"
	"github.com/IT-Nick/heritage/internal/domain/model"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/IT-Nick/heritage/report"
	"github.com/gorilla/mux"
)

// SitesHandler GET /sites и GET /sites/{id}
type SitesHandler struct {
	contentService *contentService.ContentService
	botUsername    string
}

func NewSitesHandler(contentService *contentService.ContentService, botUsername string) *SitesHandler {
	return &SitesHandler{
		contentService: contentService,
		botUsername:    botUsername,
	}
}

func (h *SitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr, single := mux.Vars(r)["id"]
	if !single {
		h.list(w, r)
		return
	}

	siteID, err := strconv.Atoi(idStr)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid site id %q", idStr))
		return
	}

	site, err := h.contentService.GetSiteByID(r.Context(), siteID)
	if err != nil {
		api_errors.Write(w, err)
		return
	}

	httpError.JSONResponse(w, http.StatusOK, h.response(*site))
}

func (h *SitesHandler) list(w http.ResponseWriter, r *http.Request) {
	sites, err := h.contentService.GetSites(r.Context())
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get sites: %v", err))
		return
	}

	response := make([]dto.SiteResponse, len(sites))
	for i, s := range sites {
		response[i] = h.response(s)
	}
	httpError.JSONResponse(w, http.StatusOK, response)
}

func (h *SitesHandler) response(s model.HeritageSite) dto.SiteResponse {
	resp := dto.SiteResponse{
		HeritageSite: s,
		QRURL:        fmt.Sprintf("/sites/%d/qr.png", s.ID),
	}
	if s.ARAvailable {
		resp.ARLink = report.ARDeepLink(h.botUsername, s.ID)
	}
	return resp
}
