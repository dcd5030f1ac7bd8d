package dto

import (
	"time"

	"github.com/bottic/shop-backend/internal/app/model"
)

type UserResponse struct {
	ID        uint             `json:"id"`
	Email     string           `json:"email"`
	Role      model.UserRole   `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

type ProfileCreate struct {
	Username  string `json:"username" binding:"required"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
}

type ProfileResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Profile != nil {
		profile := NewProfileResponse(u.Profile)
		resp.Profile = &profile
	}
	return resp
}

func NewProfileResponse(p *model.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Username:  p.Username,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
	}
}
