package lookup_address

import "github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"

// LookupAddressRequest HTTP request model
type LookupAddressRequest struct {
	Postcode   string `json:"postcode"`
	Huisnummer string `json:"huisnummer"`
	Toevoeging string `json:"toevoeging,omitempty"`
}

// AddressResponse HTTP response model
type AddressResponse struct {
	Postcode   string  `json:"postcode"`
	Huisnummer string  `json:"huisnummer"`
	Toevoeging string  `json:"toevoeging,omitempty"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func newAddressResponse(values map[string]string, a *addressservice.Address) *AddressResponse {
	return &AddressResponse{
		Postcode:   values["postcode"],
		Huisnummer: values["huisnummer"],
		Toevoeging: values["toevoeging"],
		Street:     a.Street,
		City:       a.City,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}

// ValidationErrorResponse ошибка валидации с ошибками по полям
type ValidationErrorResponse struct {
	Code        int                 `json:"code"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}
