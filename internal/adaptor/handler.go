package adaptor

import (
	"user-registration/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User: NewUserHandler(service.User, log),
	}
}
