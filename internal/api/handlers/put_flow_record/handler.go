package put_flow_record

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/service/records"
)

const (
	msgMissingProfileID   = "Profiel-ID ontbreekt."
	msgInvalidRequestBody = "Ongeldige aanvraag."
	msgInvalidRecord      = "Ongeldige gegevens van het formulier."
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

// Handle PUT /api/v1/flows/{flow}/record
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flow := mux.Vars(r)["flow"]

	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("PUT /flows/{flow}/record - Missing profile ID")
		handlers.RespondBadRequest(w, msgMissingProfileID)
		return
	}

	var req PutFlowRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flows/{flow}/record - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	record, err := h.service.Put(r.Context(), profileID, flow, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("PUT /flows/{flow}/record - Invalid input: flow=%s, error=%v", flow, err)
			handlers.RespondBadRequest(w, msgInvalidRecord)

		default:
			h.logger.Error("PUT /flows/{flow}/record - Failed to save record: flow=%s, error=%v", flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flows/{flow}/record - Record replaced: flow=%s, keys=%d", flow, len(record.Record))
	handlers.RespondJSON(w, http.StatusOK, record)
}
