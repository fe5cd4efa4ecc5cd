package get_step_schema

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
)

const msgStepNotFound = "Deze stap bestaat niet."

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

// Handle GET /api/v1/steps/{step}/schema
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	step := mux.Vars(r)["step"]

	schema := h.registry.Get(step)
	if schema == nil {
		h.logger.Warn("GET /steps/{step}/schema - Step not found: step=%s", step)
		handlers.RespondNotFound(w, msgStepNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(schema))
}
