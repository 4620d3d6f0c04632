package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", dto.ID, err)
		}
		return err
	}

	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND id = ?", dto.UserID, dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Claim persists a courier acceptance with a compare-and-set guard. The row
// is updated only while it is still pending and unassigned, so two couriers
// racing for the same order resolve to exactly one winner.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND id = ? AND status = ? AND courier_id IS NULL",
			dto.UserID, dto.ID, order.Pending.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"courier_id":  dto.CourierID,
			"accepted_at": dto.AcceptedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("order", dto.ID,
			fmt.Errorf("order is no longer pending and unassigned"))
	}

	return nil
}

// Cancel persists a cancellation with a compare-and-set guard. A claim
// committed between the caller's read and this write leaves the row
// non-pending, so the update matches nothing and the claim survives.
func (r *GormOrderRepository) Cancel(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND id = ? AND status = ? AND courier_id IS NULL",
			dto.UserID, dto.ID, order.Pending.String()).
		Updates(map[string]any{
			"status": dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("order", dto.ID,
			fmt.Errorf("order is no longer pending and unassigned"))
	}

	return nil
}

// MarkRated persists a rating with a compare-and-set guard. The row is
// updated only while it is still unrated, so a second rating for the same
// order loses the race instead of overwriting the first.
func (r *GormOrderRepository) MarkRated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND id = ? AND rated = false", dto.UserID, dto.ID).
		Updates(map[string]any{
			"rated":  dto.Rated,
			"rating": dto.Rating,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("order", dto.ID,
			fmt.Errorf("order is already rated"))
	}

	return nil
}

// Get retrieves an order by its owner and identifier.
func (r *GormOrderRepository) Get(ctx context.Context, userID int64, id string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllPendingUnassigned retrieves the orders awaiting a courier, oldest
// first.
func (r *GormOrderRepository) GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ? AND courier_id IS NULL", order.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByCourier retrieves every order ever claimed by the courier.
func (r *GormOrderRepository) GetAllByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Find(&dtos, "courier_id = ?", courierID).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAll retrieves every stored order for the stats full scan.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
