package domain

import "time"

// Promotion kinds.
const (
	PromotionPercentage = "percentage"
	PromotionFixed      = "fixed"
	PromotionShipping   = "shipping"
)

// Promotion statuses derived from the date window.
const (
	PromotionActive    = "active"
	PromotionScheduled = "scheduled"
	PromotionExpired   = "expired"
)

type Promotion struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Type       string    `json:"type"`
	Value      int       `json:"value"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	UsageLimit int       `json:"usageLimit"`
	UsageCount int       `json:"usageCount"`
}

// StatusAt derives the promotion status from its date window.
func (p Promotion) StatusAt(now time.Time) string {
	switch {
	case now.Before(p.StartDate):
		return PromotionScheduled
	case now.After(p.EndDate):
		return PromotionExpired
	default:
		return PromotionActive
	}
}
