package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/errors"
	"ubishop/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// translateFindError maps 'record not found' to the repository sentinel and
// wraps everything else as a database error.
func translateFindError(err error, notFound error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "user_id = ?", id).Error; err != nil {
		return nil, translateFindError(err, repository.ErrUserNotFound, "failed to find user by id")
	}

	return userM.ToDomain(), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var rows []model.UserModel
	if err := repo.db.WithContext(ctx).Where("user_id IN ?", ids).Order("user_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by ids")
	}

	return toUsers(rows), nil
}

// FindByEmail matches lower(email) so it rides the unique expression index.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("user_id").
		First(&userM).Error
	if err != nil {
		return nil, translateFindError(err, repository.ErrUserNotFound, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []model.UserModel
	if err := repo.db.WithContext(ctx).Order("user_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return toUsers(rows), nil
}

// Create relies on the unique index on lower(email); two racing inserts of the
// same address leave exactly one row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUser(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]any{
			"nombre_usuario": user.Name,
			"telefono":       user.Phone,
			"email":          user.Email,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUsers(rows []model.UserModel) []*entity.User {
	out := make([]*entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
