package start_flow

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

// Handle POST /api/v1/flows/{flow}/start
// Запускает flow с первого шага; предыдущая сессия профиля для этого flow отбрасывается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("POST /flows/{flow}/start - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	session, err := h.service.Start(r.Context(), profileID, flow)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrFlowNotFound):
			h.logger.Warn("POST /flows/{flow}/start - Flow not found: flow=%s", flow)
			handlers.RespondNotFound(w, msgFlowNotFound)

		default:
			h.logger.Error("POST /flows/{flow}/start - Failed to start flow: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flow}/start - Flow started: flow=%s, step=%s", flow, session.Step)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
