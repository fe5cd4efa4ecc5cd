package flow_back

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
	msgNoPreviousStep   = "Dit is de eerste stap."
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

// Handle POST /api/v1/flows/{flow}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("POST /flows/{flow}/back - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	session, err := h.service.Back(r.Context(), profileID, flow)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, intake.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrNoPreviousStep):
			handlers.RespondConflict(w, msgNoPreviousStep)

		default:
			h.logger.Error("POST /flows/{flow}/back - Failed to go back: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flow}/back - Returned to step: flow=%s, step=%s", flow, session.Step)
	handlers.RespondJSON(w, http.StatusOK, session)
}
