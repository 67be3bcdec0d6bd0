package domain

// WeeklyHours maps a lowercase weekday name ("monday" .. "sunday") to
// either an interval like "7:00 AM - 3:00 PM" or the literal "Closed".
// A missing day, or a nil table on the cafe, means "assume open".
type WeeklyHours map[string]string

const Closed = "Closed"

// Area classification tags for the catalog.
const (
	AreaCBD     = "cbd"
	AreaOutside = "outside"
)

type Cafe struct {
	ID          string
	Name        string
	Address     string
	Lat, Lng    float64
	Area        string // "" when unclassified
	Specialty   string
	Description string
	Hours       WeeklyHours // nil = no hours published
}
