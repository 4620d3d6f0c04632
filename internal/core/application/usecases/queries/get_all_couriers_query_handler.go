package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves the courier directory from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models sorted by handle.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			handle,
			onboarded_at,
			onboarded_by
		FROM couriers
		ORDER BY handle
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAllCouriersQueryResponse

		err = rows.Scan(
			&entry.ID,
			&entry.Handle,
			&entry.OnboardedAt,
			&entry.OnboardedBy,
		)
		if err != nil {
			return nil, err
		}

		couriers = append(couriers, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
