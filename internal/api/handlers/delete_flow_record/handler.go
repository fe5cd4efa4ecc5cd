package delete_flow_record

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

// Handle DELETE /api/v1/flows/{flow}/record
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /flows/{flow}/record - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	if err := h.service.Delete(r.Context(), profileID, flow); err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("DELETE /flows/{flow}/record - Invalid flow: flow=%s", flow)
			handlers.RespondBadRequest(w, msgInvalidFlow)

		default:
			h.logger.Error("DELETE /flows/{flow}/record - Failed to delete record: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /flows/{flow}/record - Record deleted: flow=%s", flow)
	handlers.RespondNoContent(w)
}
