package usecase

import (
	"context"

	"ubishop/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name   string
	Secret string
	Email  string
	Phone  string
	RoleID int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email  string
	Secret string
}

// LoginOutput returns the user, its role and an access token.
type LoginOutput struct {
	User        *entity.User
	Role        entity.Role
	AccessToken string
}

// UserUsecase defines registration, login and profile operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, actor Actor, userID int64, patch entity.UserPatch) (*entity.User, error)
}
