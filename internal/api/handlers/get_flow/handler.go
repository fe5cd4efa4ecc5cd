package get_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake"
)

const (
	msgMissingProfileID = "Profiel-ID ontbreekt."
	msgFlowNotFound     = "Dit formulier bestaat niet."
	msgSessionNotFound  = "Dit formulier is nog niet gestart."
)

type Handler struct {
	service IntakeService
	logger  Logger
}

func NewHandler(service IntakeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/flows/{flow}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("GET /flows/{flow} - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	session, err := h.service.Get(r.Context(), profileID, flow)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, intake.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /flows/{flow} - Failed to get session: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
