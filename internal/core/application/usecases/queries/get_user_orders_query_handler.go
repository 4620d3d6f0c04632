package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's order history straight
// from the database. Uses direct SQL for optimal read performance in the
// CQRS pattern.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the customer's orders sorted newest
// first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			total,
			status,
			created_at,
			delivered_at,
			rating
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetUserOrdersQueryResponse

		err = rows.Scan(
			&entry.OrderID,
			&entry.ProductName,
			&entry.Quantity,
			&entry.Total,
			&entry.Status,
			&entry.CreatedAt,
			&entry.DeliveredAt,
			&entry.Rating,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
