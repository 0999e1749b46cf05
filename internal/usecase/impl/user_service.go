package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/domain/service"
	"ubishop/internal/errors"
	"ubishop/internal/usecase"
)

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account. Email uniqueness is enforced by the insert
// itself so concurrent registrations of one address leave a single user.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := requireText(map[string]string{
		"nombre_usuario": input.Name,
		"clave":          input.Secret,
	}); err != nil {
		return nil, err
	}

	secret, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash credential")
	}

	user := &entity.User{
		Name:   strings.TrimSpace(input.Name),
		Secret: secret,
		Email:  normalizeEmail(input.Email),
		Phone:  strings.TrimSpace(input.Phone),
		RoleID: input.RoleID,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Info("Registration rejected, email taken")
		}

		return nil, translate(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("role", user.Role().String()))

	return user, nil
}

// Login reports the same error for an unknown email and a wrong secret.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Secret, user.Secret) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	role := user.Role()
	token, err := srv.tokenService.GenerateAccessToken(user.ID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{User: user, Role: role, AccessToken: token}, nil
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)

	return users, errors.Wrap(err, "failed to list users")
}

// Update applies a partial profile change. Users may only edit themselves.
func (srv *userService) Update(ctx context.Context, actor usecase.Actor, userID int64, patch entity.UserPatch) (*entity.User, error) {
	if actor.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot edit another user")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		user.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Email != nil {
		user.Email = normalizeEmail(*patch.Email)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "failed to update user")
	}

	return user, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}
