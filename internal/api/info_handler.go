package api

import (
	"net/http"
	"runtime"

	"github.com/bankmesh/bank-services/internal/api/shared"
	"github.com/bankmesh/bank-services/internal/config"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/go-chi/chi/v5"
)

// InfoHandler serves the build, runtime and contact information endpoints
// shared by all services.
type InfoHandler struct {
	buildVersion string
	contact      dto.ContactInfo
}

// NewInfoHandler creates an InfoHandler from the service configuration.
func NewInfoHandler(buildVersion string, contact config.ContactConfig) *InfoHandler {
	details := contact.Details
	if details == nil {
		details = map[string]string{}
	}
	onCall := contact.OnCallSupport
	if onCall == nil {
		onCall = []string{}
	}

	return &InfoHandler{
		buildVersion: buildVersion,
		contact: dto.ContactInfo{
			Message:        contact.Message,
			ContactDetails: details,
			OnCallSupport:  onCall,
		},
	}
}

// Routes registers the info endpoints on r.
func (h *InfoHandler) Routes(r chi.Router) {
	r.Get("/build-info", h.BuildInfo)
	r.Get("/go-version", h.GoVersion)
	r.Get("/contact-info", h.ContactInfo)
}

// BuildInfo handles GET /api/build-info
func (h *InfoHandler) BuildInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.buildVersion)
}

// GoVersion handles GET /api/go-version
func (h *InfoHandler) GoVersion(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, runtime.Version())
}

// ContactInfo handles GET /api/contact-info
func (h *InfoHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.contact)
}
