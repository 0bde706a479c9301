package models

import "time"

type TutoringSession struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TutorID uint `json:"tutor_id"`
	Tutor   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor"`

	CourseID uint   `json:"course_id"`
	Course   Course `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"course"`

	Title string `gorm:"size:150;not null" json:"title"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'AVAILABLE'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
