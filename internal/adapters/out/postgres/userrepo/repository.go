package userrepo

import (
	"context"
	"errors"

	"shopbot/internal/adapters/out/postgres/orderrepo"
	"shopbot/internal/core/domain/model/user"
	"shopbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
//
// The repository persists the profile row and the cart. Orders travel with
// the aggregate on load so domain invariants can see the full history, but
// they are written through the order repository, keeping a single write path
// per table.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a newly registered user.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("user", dto.ID, err)
		}
		return err
	}

	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update saves the profile and replaces the cart wholesale.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	if err := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "user_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a user aggregate with its cart and full order history.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	var items []CartItemDTO
	if err := r.db.WithContext(ctx).Find(&items, "user_id = ?", id).Error; err != nil {
		return nil, err
	}

	var orderDTOs []orderrepo.OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orderDTOs, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items, orderDTOs)
}
