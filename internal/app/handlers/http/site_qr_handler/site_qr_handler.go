package site_qr_handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/IT-Nick/heritage/report"
	"github.com/gorilla/mux"
)

// SiteQRHandler GET /sites/{id}/qr.png: QR-код с глубокой ссылкой на AR-экран
type SiteQRHandler struct {
	contentService *contentService.ContentService
	botUsername    string
}

func NewSiteQRHandler(contentService *contentService.ContentService, botUsername string) *SiteQRHandler {
	return &SiteQRHandler{
		contentService: contentService,
		botUsername:    botUsername,
	}
}

func (h *SiteQRHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
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

	png, err := report.SiteQR(report.ARDeepLink(h.botUsername, site.ID))
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Printf("failed to write qr code for site %d: %v", site.ID, err)
	}
}
