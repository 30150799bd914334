package models

import "strconv"

// Plan is a purchasable data bundle for a given network and plan type.
// Validate holds the validity duration in days; upstream sends it as either
// a bare number or a string, so it is normalized to a string at decode time.
type Plan struct {
	ID       string  `json:"id"`
	Size     string  `json:"size"`
	Validate string  `json:"validate"`
	Price    float64 `json:"price"`
}

// Usable reports whether every field required to sell the plan is populated.
// Partially-populated plans are dropped during catalog application and
// rejected outright if selected directly.
func (p Plan) Usable() bool {
	return p.ID != "" && p.Size != "" && p.Validate != "" && p.Price > 0
}

// ValidityDays parses the validity duration, defaulting to 1 day when the
// upstream value is not a clean integer.
func (p Plan) ValidityDays() int {
	if d, err := strconv.Atoi(p.Validate); err == nil && d > 0 {
		return d
	}
	return 1
}

// Selection is the user's in-progress choice across steps 1-3. Plan and
// Phone are invalidated whenever Network or PlanType changes.
type Selection struct {
	Network  NetworkID `json:"network"`
	PlanType string    `json:"type"`
	Plan     *Plan     `json:"plan,omitempty"`
	Phone    string    `json:"phone,omitempty"`
}
