package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierRatingQueryHandler computes a courier's rating summary from the
// rating log.
type GetCourierRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierRatingQueryHandler creates a handler for rating summary
// queries.
func NewGetCourierRatingQueryHandler(db *gorm.DB) GetCourierRatingQueryHandler {
	return GetCourierRatingQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCourierRatingQueryHandler) Handle(
	ctx context.Context,
	query GetCourierRatingQuery,
) (GetCourierRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierRatingQueryResponse{}, err
	}

	response := GetCourierRatingQueryResponse{CourierID: query.CourierID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(AVG(value), 0)
		FROM ratings
		WHERE courier_id = ?
	`, query.CourierID()).Row()

	if err := row.Scan(&response.Count, &response.Average); err != nil {
		return GetCourierRatingQueryResponse{}, err
	}

	return response, nil
}
