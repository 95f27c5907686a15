package postgres

import (
	"context"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const telephonesAssociation = "Telephones"

// userRepository implements repository.UserRepository using GORM.
// Every call is bounded by queryTimeout.
type userRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewUserRepository is the constructor used outside transactions.
func NewUserRepository(db *gorm.DB, cfg *config.Config) repository.UserRepository {
	return newUserRepository(db, cfg.Persistence.QueryTimeout)
}

func newUserRepository(db *gorm.DB, queryTimeout time.Duration) *userRepository {
	return &userRepository{db: db, queryTimeout: queryTimeout}
}

// FindByID loads a user with telephones. The read goes to the primary so a
// token issued right after registration always resolves.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, repo.queryTimeout)
	defer cancel()

	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload(telephonesAssociation).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail loads a user including the password hash. Telephones are not
// loaded; login only needs the credentials.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, repo.queryTimeout)
	defer cancel()

	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// CreateWithTelephones inserts the user row and its telephone rows. It is
// atomic only when called through TransactionManager.Execute.
func (repo *userRepository) CreateWithTelephones(ctx context.Context, user *entity.User) error {
	ctx, cancel := withTimeout(ctx, repo.queryTimeout)
	defer cancel()

	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}
	for i := range userM.Telephones {
		if userM.Telephones[i].ID == uuid.Nil {
			userM.Telephones[i].ID = uuid.New()
		}
		userM.Telephones[i].UserID = userM.ID
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("unique constraint on users.email")
		case isCheckConstraintViolation(err):
			return domainerrors.NewDatabaseExecuteError(err, "user or telephone failed a check constraint")
		case isNotNullConstraintViolation(err):
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.NewDatabaseExecuteError(err, "invalid telephone owner reference")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	created := toUserDomain(userM)
	created.PasswordHash = user.PasswordHash
	*user = *created

	return nil
}

// List returns all users with telephones, oldest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	ctx, cancel := withTimeout(ctx, repo.queryTimeout)
	defer cancel()

	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload(telephonesAssociation).
		Order("created_at ASC").
		Order("id ASC").
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	telephones := make([]*entity.Telephone, 0, len(data.Telephones))
	for _, tel := range data.Telephones {
		telephones = append(telephones, &entity.Telephone{
			ID:       tel.ID,
			UserID:   tel.UserID,
			AreaCode: tel.AreaCode,
			Number:   tel.Number,
		})
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Telephones:   telephones,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	telephones := make([]model.TelephoneModel, 0, len(data.Telephones))
	for _, tel := range data.Telephones {
		telephones = append(telephones, model.TelephoneModel{
			ID:       tel.ID,
			UserID:   data.ID,
			AreaCode: tel.AreaCode,
			Number:   tel.Number,
		})
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Telephones:   telephones,
	}
}
