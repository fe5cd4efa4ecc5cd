package domain

// Hour grid for provider availability (inclusive)
const (
	FirstHour = 7
	LastHour  = 22
)

// Ranking defaults
const (
	DefaultTopTierLimit = 5
	TopTierMinRating    = 4.0
	MidTierMinRating    = 3.0
	EarthRadiusKm       = 6371.0
)

// Planning defaults
const (
	DefaultMaxAdvanceDays = 90
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	HourFormat = "%02d:00"
)

// Flow names
const (
	FlowAbonnement = "abonnement-aanvraag"
)

// GlobalFields are reusable across flows and only used for prefill
var GlobalFields = []string{
	"emailadres",
	"voornaam",
	"achternaam",
	"telefoonnummer",
}

// IsGlobalField returns true if the field value is shared across flows
func IsGlobalField(name string) bool {
	for _, f := range GlobalFields {
		if f == name {
			return true
		}
	}
	return false
}
