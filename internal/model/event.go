package model

// Event is a Grand Prix race weekend in the catalog. Events are seeded
// once at startup and are read-only afterwards; the name is unique.
// ImagePath is an opaque asset path passed through to the presentation
// layer untouched.
type Event struct {
	ID        uint64 // events.id
	Name      string // events.name (unique)
	Country   string // events.country
	RaceDate  string // events.race_date (e.g. "Dec 06-08")
	ImagePath string // events.image_path
}
