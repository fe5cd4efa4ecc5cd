package domain

// SlotStatus is the availability status of a single hour
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "beschikbaar"
	StatusUnavailable SlotStatus = "niet-beschikbaar"
)

// DayName is the full Dutch name of a weekday as sent by the provider service
type DayName string

const (
	Monday    DayName = "maandag"
	Tuesday   DayName = "dinsdag"
	Wednesday DayName = "woensdag"
	Thursday  DayName = "donderdag"
	Friday    DayName = "vrijdag"
	Saturday  DayName = "zaterdag"
	Sunday    DayName = "zondag"
)

// Week lists the weekdays in calendar order
var Week = []DayName{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayCodes = map[DayName]string{
	Monday:    "ma",
	Tuesday:   "di",
	Wednesday: "wo",
	Thursday:  "do",
	Friday:    "vr",
	Saturday:  "za",
	Sunday:    "zo",
}

// Code returns the two-letter day code, or "" for an unknown day
func (d DayName) Code() string {
	return dayCodes[d]
}

// IsValid returns true if the day is one of the seven weekdays
func (d DayName) IsValid() bool {
	_, ok := dayCodes[d]
	return ok
}

// AvailabilitySlot represents one hour of a provider's weekly schedule
type AvailabilitySlot struct {
	Day    DayName    `json:"day"`
	Hour   string     `json:"hour"` // "HH:00"
	Status SlotStatus `json:"status"`
}

// IsAvailable returns true if the provider declared the hour as available
func (s *AvailabilitySlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// Daypart is a fixed half-open hour range [Start, End) within a day
type Daypart struct {
	Name  string
	Start int
	End   int
}

// Dayparts in order; the last one has no forward neighbour
var Dayparts = []Daypart{
	{Name: "ochtend", Start: 7, End: 12},
	{Name: "middag", Start: 12, End: 17},
	{Name: "avond", Start: 17, End: 22},
}

// DaypartKey builds the "<daycode>-<daypart>" key used in availability maps
func DaypartKey(day DayName, daypart string) string {
	return day.Code() + "-" + daypart
}

// IsValidDaypartKey returns true for keys like "ma-ochtend"
func IsValidDaypartKey(key string) bool {
	for _, day := range Week {
		for _, dp := range Dayparts {
			if DaypartKey(day, dp.Name) == key {
				return true
			}
		}
	}
	return false
}
