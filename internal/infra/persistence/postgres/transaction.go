package postgres

import (
	"context"
	"time"

	"directory/config"
	"directory/internal/domain/repository"
	"directory/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db           *gorm.DB
	txTimeout    time.Duration
	queryTimeout time.Duration
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
// In GORM, a transaction handle is also a *gorm.DB.
type gormRepositoryFactory struct {
	tx           *gorm.DB
	queryTimeout time.Duration
}

// UserRepo returns a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return newUserRepository(f.tx, f.queryTimeout)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{
		db:           db,
		txTimeout:    cfg.Persistence.TxTimeout,
		queryTimeout: cfg.Persistence.QueryTimeout,
	}
}

// Execute runs fn within one transaction bounded by the configured transaction timeout.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	ctx, cancel := withTimeout(ctx, tm.txTimeout)
	defer cancel()

	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, queryTimeout: tm.queryTimeout}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
