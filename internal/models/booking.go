package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public identifier handed to students.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	SessionID uint            `json:"session_id"`
	Session   TutoringSession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"session"`

	StudentID uint `json:"student_id"`
	Student   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
