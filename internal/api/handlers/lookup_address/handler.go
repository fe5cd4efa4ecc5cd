package lookup_address

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-IntakeService/internal/validation"
)

// addressStep шаг, по схеме которого проверяется адрес
const addressStep = "adres"

const (
	msgInvalidRequestBody = "Ongeldige aanvraag."
	msgValidationFailed   = "Controleer de gemarkeerde velden."
	msgAddressNotFound    = "We kunnen dit adres niet vinden. Controleer de postcode en het huisnummer."
	msgAddressService     = "Er ging iets mis. Probeer het later opnieuw."
)

type Handler struct {
	client   AddressServiceClient
	registry SchemaRegistry
	logger   Logger
}

func NewHandler(client AddressServiceClient, registry SchemaRegistry, logger Logger) *Handler {
	return &Handler{
		client:   client,
		registry: registry,
		logger:   logger,
	}
}

// Handle POST /api/v1/addresses/lookup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LookupAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /addresses/lookup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schema := h.registry.Get(addressStep)
	if schema == nil {
		h.logger.Error("POST /addresses/lookup - Step schema missing: step=%s", addressStep)
		handlers.RespondInternalError(w)
		return
	}

	values := validation.SanitizeForm(map[string]string{
		"postcode":   req.Postcode,
		"huisnummer": req.Huisnummer,
		"toevoeging": req.Toevoeging,
	}, schema)

	result := validation.ValidateForm(values, schema, validation.Touched(schema))
	if !result.IsFormValid {
		h.logger.Warn("POST /addresses/lookup - Validation failed: fields=%d", len(result.FieldErrors))
		handlers.RespondJSON(w, http.StatusBadRequest, &ValidationErrorResponse{
			Code:        http.StatusBadRequest,
			Message:     msgValidationFailed,
			FieldErrors: result.FieldErrors,
		})
		return
	}

	address, err := h.client.Lookup(r.Context(), values["postcode"], values["huisnummer"], values["toevoeging"])
	if err != nil {
		switch {
		case errors.Is(err, addressservice.ErrAddressNotFound):
			h.logger.Warn("POST /addresses/lookup - Address not found: postcode=%s", values["postcode"])
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("POST /addresses/lookup - Address service failed: postcode=%s, error=%v", values["postcode"], err)
			handlers.RespondBadGateway(w, msgAddressService)
		}
		return
	}

	h.logger.Info("POST /addresses/lookup - Address resolved: postcode=%s, city=%s", values["postcode"], address.City)
	handlers.RespondJSON(w, http.StatusOK, newAddressResponse(values, address))
}
