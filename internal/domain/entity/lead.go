package entity

import "time"

// Lead is a landing-page form submission (domain layer, no serialization tags)
type Lead struct {
	ID                int64
	Name              string
	Email             string
	Phone             string
	Age               string
	Goals             []string
	Interests         []string
	FinancialGoal     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LeadStats is the aggregate view shown on the admin dashboard
type LeadStats struct {
	Total          int
	Today          int
	ThisWeek       int
	ThisMonth      int
	ByGoal         map[string]int
	ByInterest     map[string]int
	ByAge          map[string]int
	ConversionRate float64
}
