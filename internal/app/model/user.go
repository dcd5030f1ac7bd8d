package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Profile   *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Orders    []Order      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CartItems []CartItem   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile is the one-per-user extension record. Uniqueness is enforced
// by the application on create, not by a stored constraint.
type UserProfile struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Username  string `gorm:"type:varchar(50);not null" json:"username"`
	Phone     string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvatarURL string `gorm:"type:varchar(255)" json:"avatar_url,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
