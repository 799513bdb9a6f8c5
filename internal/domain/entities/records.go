package entities

import (
	"strconv"
	"strings"
	"time"
)

// Wire formats for user-entered dates. The bot prompts with examples in
// exactly these layouts and rejects anything else.
const (
	DateLayout     = "02.01.2006"
	DateTimeLayout = "02.01.2006 15:04"
)

// OilChangeIntervalKm is the distance after which an oil change is due.
const OilChangeIntervalKm = 7000

// RepairCategory is the fixed set of repair categories. The set is closed:
// every repair belongs to exactly one of these.
type RepairCategory string

const (
	CategoryEngine     RepairCategory = "engine"
	CategorySuspension RepairCategory = "suspension"
	CategoryBrakes     RepairCategory = "brakes"
	CategoryElectrical RepairCategory = "electrical"
	CategoryBody       RepairCategory = "body"
	CategoryOther      RepairCategory = "other"
)

// AllRepairCategories returns the categories in presentation order.
func AllRepairCategories() []RepairCategory {
	return []RepairCategory{
		CategoryEngine,
		CategorySuspension,
		CategoryBrakes,
		CategoryElectrical,
		CategoryBody,
		CategoryOther,
	}
}

// ParseRepairCategory resolves free text or a button value to a category.
func ParseRepairCategory(s string) (RepairCategory, bool) {
	c := RepairCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllRepairCategories() {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Label returns the user-facing category name.
func (c RepairCategory) Label() string {
	switch c {
	case CategoryEngine:
		return "Engine"
	case CategorySuspension:
		return "Suspension"
	case CategoryBrakes:
		return "Brakes"
	case CategoryElectrical:
		return "Electrical"
	case CategoryBody:
		return "Body"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// OilChange records one oil change.
//
// Mileage monotonicity is intentionally NOT enforced: entries may arrive
// out of order, consumers sort by date.
type OilChange struct {
	Date    time.Time `json:"date"`
	Mileage int       `json:"mileage"`
	OilName string    `json:"oil_name"`
}

// OilAdd records one oil top-up between changes.
type OilAdd struct {
	Date         time.Time `json:"date"`
	Mileage      int       `json:"mileage"`
	AmountLiters float64   `json:"amount_liters"`
}

// Part is a single part used in a repair. Parts have no lifecycle of their
// own; they exist only inside their owning Repair.
type Part struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Repair records one repair event with an itemized parts list.
// RepairCost is labor, separate from the parts total.
type Repair struct {
	ID         string         `json:"id"`
	Date       time.Time      `json:"date"`
	Category   RepairCategory `json:"category"`
	Mileage    int            `json:"mileage"`
	Parts      []Part         `json:"parts"`
	RepairCost float64        `json:"repair_cost"`
	Comment    string         `json:"comment,omitempty"`
	PhotoRef   string         `json:"photo_ref,omitempty"`
}

// TotalCost is labor plus the sum of part costs.
func (r Repair) TotalCost() float64 {
	total := r.RepairCost
	for _, p := range r.Parts {
		total += p.Cost
	}
	return total
}

// LastMileage is the most recent odometer reading the user reported.
// At most one per user; overwritten on every mileage update.
type LastMileage struct {
	Date    time.Time `json:"date"`
	Mileage int       `json:"mileage"`
}

// UserProfile is the aggregate root and the unit of persistence: one
// document per user holding the full record history.
type UserProfile struct {
	UserID             string       `json:"user_id"`
	OilChanges         []OilChange  `json:"oil_changes"`
	OilAdds            []OilAdd     `json:"oil_adds"`
	Repairs            []Repair     `json:"repairs"`
	LastMileage        *LastMileage `json:"last_mileage,omitempty"`
	LastReminderSentAt *time.Time   `json:"last_reminder_sent_at,omitempty"`
}

// ParseDate parses a user-entered calendar date (DD.MM.YYYY).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseDateTime parses a user-entered date with time of day (DD.MM.YYYY HH:mm).
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, strings.TrimSpace(s))
}

// ParseMileage parses a non-negative integer kilometre reading.
func ParseMileage(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseAmount parses a non-negative real value (litres or cost).
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ValidText reports whether s is usable as a required free-text field.
func ValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}
