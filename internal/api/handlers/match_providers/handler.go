package match_providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
	matchProviders "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
)

const (
	msgInvalidRequestBody = "Ongeldige aanvraag."
	msgInvalidInput       = "Controleer de zoekgegevens."
	msgProviderService    = "Er ging iets mis. Probeer het later opnieuw."
)

type Handler struct {
	useCase MatchProvidersUseCase
	logger  Logger
}

func NewHandler(useCase MatchProvidersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/match
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MatchProvidersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/match - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, matchProviders.ErrInvalidInput):
			h.logger.Warn("POST /providers/match - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, matchProviders.ErrProviderService):
			h.logger.Error("POST /providers/match - Provider service failed: postcode=%s, error=%v", req.Postcode, err)
			handlers.RespondBadGateway(w, msgProviderService)

		default:
			h.logger.Error("POST /providers/match - Failed to match providers: postcode=%s, error=%v", req.Postcode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/match - Matched providers: postcode=%s, total=%d, eligible=%d",
		req.Postcode, result.Total, result.Eligible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
