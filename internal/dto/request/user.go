package request

import "strings"

type SignupRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,notblank"`
	City        string `json:"city" validate:"required,notblank"`
}

// TrimSpace strips surrounding whitespace from every field
func (r *SignupRequest) TrimSpace() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.City = strings.TrimSpace(r.City)
}

type ActivateRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *ActivateRequest) TrimSpace() {
	r.Email = strings.TrimSpace(r.Email)
}
