package abonnement

import "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"

// Имена шагов в порядке прохождения
const (
	StepAdres            = "adres"
	StepOpdracht         = "opdracht"
	StepPlanning         = "planning"
	StepPersoonsgegevens = "persoonsgegevens"
)

// Steps шаги abonnement flow по порядку
var Steps = []string{StepAdres, StepOpdracht, StepPlanning, StepPersoonsgegevens}

// Допустимые частоты уборки
var Frequencies = []string{"wekelijks", "tweewekelijks", "maandelijks"}

// Ключи flow record
const (
	keyPostcode       = "postcode"
	keyHuisnummer     = "huisnummer"
	keyToevoeging     = "toevoeging"
	keyStraat         = "straat"
	keyPlaats         = "plaats"
	keyLat            = "lat"
	keyLng            = "lng"
	keyOppervlakte    = "oppervlakte"
	keyFrequentie     = "frequentie"
	keyUren           = "uren"
	keyPrijs          = "prijs"
	keyDagdelen       = "dagdelen"
	keyStartdatum     = "startdatum"
	keyKandidaten     = "kandidaten"
	keyVoornaam       = "voornaam"
	keyAchternaam     = "achternaam"
	keyEmailadres     = "emailadres"
	keyTelefoonnummer = "telefoonnummer"
)

// Address результат шага adres
type Address struct {
	Street    string  `json:"straat"`
	City      string  `json:"plaats"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Quote результат шага opdracht
type Quote struct {
	Uren  float64 `json:"uren"`
	Prijs float64 `json:"prijs"`
}

// Planning результат шага planning
type Planning struct {
	Startdatum string                      `json:"startdatum"`
	Dagdelen   []string                    `json:"dagdelen"`
	Candidates []match_providers.Candidate `json:"-"`
}

// Пользовательское сообщение проверки email
const msgEmailInUse = "Er bestaat al een account met dit e-mailadres. Log in om verder te gaan."
