package validate_step

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/validation"
)

const (
	msgInvalidRequestBody = "Ongeldige aanvraag."
	msgStepNotFound       = "Deze stap bestaat niet."
)

type Handler struct {
	registry SchemaRegistry
	logger   Logger
}

func NewHandler(registry SchemaRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle POST /api/v1/steps/{step}/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	step := mux.Vars(r)["step"]

	var req ValidateStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /steps/{step}/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schema := h.registry.Get(step)
	if schema == nil {
		h.logger.Warn("POST /steps/{step}/validate - Step not found: step=%s", step)
		handlers.RespondNotFound(w, msgStepNotFound)
		return
	}

	values := validation.SanitizeForm(req.Values, schema)
	result := validation.ValidateForm(values, schema, req.fieldStates(schema))

	handlers.RespondJSON(w, http.StatusOK, &ValidateStepResponse{
		IsFormValid: result.IsFormValid,
		FieldErrors: result.FieldErrors,
		Values:      values,
	})
}
