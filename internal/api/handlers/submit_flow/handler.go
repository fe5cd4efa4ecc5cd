package submit_flow

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
	msgSubmitInFlight   = "Even geduld, de gegevens worden verstuurd."
	msgStepNotReady     = "Deze stap kan nu niet worden verstuurd."
	msgFlowComplete     = "Dit formulier is al verstuurd."
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

// Handle POST /api/v1/flows/{flow}/submit
// Ошибки шага (валидация, адрес не найден, нет исполнителей) возвращаются со статусом 200 в view.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("POST /flows/{flow}/submit - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	session, err := h.service.Submit(r.Context(), profileID, flow)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, intake.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrSubmitInFlight):
			h.logger.Warn("POST /flows/{flow}/submit - Submit already in flight: flow=%s", flow)
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.Is(err, intake.ErrStepNotReady):
			h.logger.Warn("POST /flows/{flow}/submit - Step not ready: flow=%s", flow)
			handlers.RespondConflict(w, msgStepNotReady)

		case errors.Is(err, intake.ErrFlowComplete):
			handlers.RespondConflict(w, msgFlowComplete)

		default:
			h.logger.Error("POST /flows/{flow}/submit - Failed to submit step: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flow}/submit - Step submitted: flow=%s, step=%s, state=%s, complete=%t",
		flow, session.Step, session.State, session.Complete)
	handlers.RespondJSON(w, http.StatusOK, session)
}
