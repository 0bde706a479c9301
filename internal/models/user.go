package models

import "time"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'student'" json:"role"`

	Bio       string `gorm:"size:500" json:"bio"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Timezone  string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
