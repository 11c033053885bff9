package domain

// Service categories are the fixed classification of shoot types.
// Free-text categories are never stored.
const (
	CategoryWedding    = "wedding"
	CategoryPrewedding = "prewedding"
	CategoryNewborn    = "newborn"
	CategoryBirthdays  = "birthdays"
	CategoryRetirement = "retirement"
	CategoryEvents     = "events"
	CategoryEngagement = "engagement"
)

// ServiceCategories lists every valid category with its display label,
// in the order the site renders filter buttons.
var ServiceCategories = []struct {
	Value string
	Label string
}{
	{CategoryWedding, "Wedding"},
	{CategoryPrewedding, "Pre-wedding"},
	{CategoryNewborn, "New Born Photoshoot"},
	{CategoryBirthdays, "Birthdays"},
	{CategoryRetirement, "Retirement"},
	{CategoryEvents, "Events"},
	{CategoryEngagement, "Engagement"},
}

func ValidCategory(s string) bool {
	for _, c := range ServiceCategories {
		if c.Value == s {
			return true
		}
	}
	return false
}

type MediaItem struct {
	ID         string `db:"id" json:"id"`
	Title      string `db:"title" json:"title,omitempty"`
	Type       string `db:"type" json:"type"` // photo | video
	Category   string `db:"service_category" json:"service_category"`
	URL        string `db:"url" json:"url"`
	UploadedBy string `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt  string `db:"created_at" json:"created_at"`
}

type InquiryRecord struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	EventType   string `db:"event_type" json:"event_type"`
	EventDate   string `db:"event_date" json:"event_date"` // YYYY-MM-DD
	Message     string `db:"message" json:"message,omitempty"`
	SubmittedAt string `db:"submitted_at" json:"submitted_at"`
}

// Package is a service offering shown on the packages page.
type Package struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	PriceRange  string `db:"price_range" json:"price_range"`
	Category    string `db:"service_category" json:"service_category"`
	CreatedBy   string `db:"created_by" json:"created_by"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}
