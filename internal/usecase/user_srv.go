package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"user-registration/internal/data/entity"
	"user-registration/internal/data/repository"
	"user-registration/internal/dto/request"
	"user-registration/internal/dto/response"
	"user-registration/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Activate(ctx context.Context, req *request.ActivateRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserDetailResponse, error)
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserDetailResponse], error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// Signup stores a new inactive user. The email must not be registered yet.
func (us *userService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	req.TrimSpace()

	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}
	req.Email = normalizeEmail(req.Email)

	// 2. Check whether the email is taken
	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		us.log.Warn("Signup rejected - email already registered", zap.String("email", req.Email))
		return nil, ErrEmailRegistered
	}

	// 3. Insert; the unique constraint catches a concurrent signup that passed step 2
	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Status:      false,
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			us.log.Warn("Signup lost race on email", zap.String("email", req.Email))
			return nil, ErrEmailRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User signed up",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Activate sets an inactive user's status to true. It fails for unknown or already active users.
func (us *userService) Activate(ctx context.Context, req *request.ActivateRequest) (*response.UserResponse, error) {
	req.TrimSpace()

	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Activate validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}
	req.Email = normalizeEmail(req.Email)

	// 2. Find user
	user, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		us.log.Warn("Activate rejected - user not found", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	// 3. Already active
	if user.Status {
		us.log.Warn("Activate rejected - already activated", zap.Int64("user_id", user.ID))
		return nil, ErrAlreadyActivated
	}

	// 4. Conditional update; a concurrent activation may have won since step 3
	activated, err := us.userRepo.Activate(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotActivated) {
			us.log.Warn("Activate lost race", zap.Int64("user_id", user.ID))
			return nil, ErrAlreadyActivated
		}
		return nil, fmt.Errorf("activate user: %w", err)
	}

	us.log.Info("User activated",
		zap.Int64("user_id", activated.ID),
		zap.String("email", activated.Email))

	resp := response.UserToResponse(activated)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserDetailResponse, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil || id < 1 {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID))
		return nil, newValidationError(map[string]string{"id": "Must be a positive integer"})
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToDetailResponse(user)
	return &resp, nil
}

func (us *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserDetailResponse], error) {
	req.Normalize()

	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	data := make([]response.UserDetailResponse, len(users))
	for i, user := range users {
		data[i] = response.UserToDetailResponse(user)
	}

	us.log.Debug("Users listed",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}
