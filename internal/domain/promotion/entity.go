package promotion

import "time"

type Status string

const StatusApproved Status = "Approved"

type PromotionRecord struct {
	ID            string
	UserID        string
	OldPosition   *string
	NewPosition   string
	PromotionDate time.Time
	Status        Status
	CreatedAt     time.Time
}
