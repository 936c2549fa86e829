package dto

import (
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// CreateUserRequest defines the payload for creating an officer/admin account.
type CreateUserRequest struct {
	Username     string          `json:"username" binding:"required,min=3"`
	Password     string          `json:"password" binding:"required,min=8"`
	Name         string          `json:"name" binding:"required"`
	MobileNumber string          `json:"mobileNumber" binding:"required,indianmobile"`
	Role         domain.UserRole `json:"role" binding:"required,oneof=OFFICER ADMIN"`
}

// UpdateUserRequest defines the mutable user fields.
type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
}

// ListUsersParams defines pagination for the user list endpoint.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobileNumber"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Name:         u.Name,
		MobileNumber: u.MobileNumber,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}
