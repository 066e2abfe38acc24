package entities

import "time"

type Notification struct {
	ID          string
	RecipientID string
	Event       string
	Title       string
	Message     string
	Type        string
	OrderID     string
	CreatedAt   time.Time
	ReadAt      *time.Time
}
