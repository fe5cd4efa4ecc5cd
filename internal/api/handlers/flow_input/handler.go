package flow_input

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake"
)

const (
	msgMissingProfileID   = "Profiel-ID ontbreekt."
	msgInvalidRequestBody = "Ongeldige aanvraag."
	msgUnknownField       = "Dit veld hoort niet bij deze stap."
	msgFlowNotFound       = "Dit formulier bestaat niet."
	msgSessionNotFound    = "Dit formulier is nog niet gestart."
	msgInputRejected      = "Even geduld, de gegevens worden verstuurd."
	msgFlowComplete       = "Dit formulier is al verstuurd."
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

// Handle POST /api/v1/flows/{flow}/input
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("POST /flows/{flow}/input - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	var req FlowInputRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows/{flow}/input - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Input(r.Context(), profileID, flow, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrInvalidInput):
			h.logger.Warn("POST /flows/{flow}/input - Invalid input: flow=%s, error=%v", flow, err)
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, intake.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, intake.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrInputRejected), errors.Is(err, intake.ErrStepNotReady):
			h.logger.Warn("POST /flows/{flow}/input - Input rejected: flow=%s, field=%s", flow, req.Field)
			handlers.RespondConflict(w, msgInputRejected)

		case errors.Is(err, intake.ErrFlowComplete):
			handlers.RespondConflict(w, msgFlowComplete)

		default:
			h.logger.Error("POST /flows/{flow}/input - Failed to handle input: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
