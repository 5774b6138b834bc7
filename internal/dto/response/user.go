package response

import (
	"time"

	"user-registration/internal/data/entity"
)

// UserResponse is the body returned by signup and activate
type UserResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Status      bool   `json:"status"`
}

// UserDetailResponse adds the stored id and timestamps for the read endpoints
type UserDetailResponse struct {
	ID int64 `json:"id"`
	UserResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		City:        user.City,
		Status:      user.Status,
	}
}

func UserToDetailResponse(user *entity.User) UserDetailResponse {
	return UserDetailResponse{
		ID:           user.ID,
		UserResponse: UserToResponse(user),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
