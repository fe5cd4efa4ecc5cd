package get_flow_record

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/service/records"
)

const (
	msgMissingProfileID = "Profiel-ID ontbreekt."
	msgInvalidFlow      = "Ongeldige naam van het formulier."
)

type Handler struct {
	service RecordService
	logger  Logger
}

func NewHandler(service RecordService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/flows/{flow}/record
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("GET /flows/{flow}/record - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	record, err := h.service.Get(r.Context(), profileID, flow)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("GET /flows/{flow}/record - Invalid flow: flow=%s", flow)
			handlers.RespondBadRequest(w, msgInvalidFlow)

		default:
			h.logger.Error("GET /flows/{flow}/record - Failed to get record: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}
