package models

// EventPlan is the static pricing configuration for one event category.
type EventPlan struct {
	Name              string `json:"name"`
	PricePerGuest     int64  `json:"pricePerGuest"`
	MinGuests         int    `json:"minGuests"`
	DepositPercentage int    `json:"depositPercentage"`
	Currency          string `json:"currency"`
}

// Plans maps event category keys to their pricing plans. Loaded once,
// read-only for the life of the process.
var Plans = map[string]EventPlan{
	"arangetram": {Name: "Arangetram", PricePerGuest: 35, MinGuests: 75, DepositPercentage: 25, Currency: "AUD"},
	"birthday":   {Name: "Birthdays", PricePerGuest: 25, MinGuests: 50, DepositPercentage: 25, Currency: "AUD"},
	"community":  {Name: "Community gathering", PricePerGuest: 30, MinGuests: 80, DepositPercentage: 20, Currency: "AUD"},
	"concert":    {Name: "Concerts", PricePerGuest: 60, MinGuests: 200, DepositPercentage: 40, Currency: "AUD"},
	"musical":    {Name: "Musical Event", PricePerGuest: 20, MinGuests: 40, DepositPercentage: 20, Currency: "AUD"},
	"puberty":    {Name: "Puberty Ceremony", PricePerGuest: 30, MinGuests: 60, DepositPercentage: 25, Currency: "AUD"},
	"reception":  {Name: "Receptions", PricePerGuest: 45, MinGuests: 100, DepositPercentage: 30, Currency: "AUD"},
	"social":     {Name: "Social gatherings", PricePerGuest: 20, MinGuests: 40, DepositPercentage: 20, Currency: "AUD"},
	"wedding":    {Name: "Weddings", PricePerGuest: 1, MinGuests: 100, DepositPercentage: 30, Currency: "AUD"},
	"other":      {Name: "others", PricePerGuest: 30, MinGuests: 50, DepositPercentage: 30, Currency: "AUD"},
}

// PlanFor looks up the plan for a category key.
func PlanFor(eventType string) (EventPlan, bool) {
	plan, ok := Plans[eventType]
	return plan, ok
}

// HallOptions is the fixed catalog of bookable venue resources.
var HallOptions = []string{
	"Palmyra Hall",
	"Private Hall",
	"Conference / Meeting Room",
}

// KnownHall reports whether name is one of the venue's halls.
func KnownHall(name string) bool {
	for _, hall := range HallOptions {
		if hall == name {
			return true
		}
	}
	return false
}

// ServiceOptions lists the optional add-ons. Informational only; they carry no
// pricing impact.
var ServiceOptions = []string{
	"Table & Chair Decoration",
	"Hall & Stage Decoration",
	"Catering",
	"Bathtime",
	"Cleaning, crockery and glassware",
	"Theatre",
	"Event Hire featured",
	"DJ System",
	"Videography",
	"Photography",
	"Sound System Management",
	"Setup",
}
