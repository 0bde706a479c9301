package models

import "time"

// AvailabilityBlock is a recurring-by-day window a tutor marks as open.
// StartTime and EndTime are stored as UTC instants; Weekday carries the
// UTC-policy tag derived from the block's date at creation.
type AvailabilityBlock struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	TutorID uint `gorm:"index;not null" json:"tutor_id"`

	Weekday string `gorm:"size:12;not null" json:"day_of_week"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AvailabilityBlock) TableName() string {
	return "availability_blocks"
}
