package storage

import "time"

// Registration is an accepted form submission. Only the last four digits of
// a card number are ever stored.
type Registration struct {
	ID            string
	Name          string
	Email         string
	JobRole       string
	OtherJobRole  string
	Design        string
	Color         string
	PaymentMethod string
	CardLast4     string
	TotalCost     int
	ActivityIDs   []string
	CreatedAt     time.Time
}

type RegistrationListFilter struct {
	Email         string
	PaymentMethod string
	ActivityID    string
	Limit         int
	Offset        int
}
