package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/domain/services"
	"shopbot/internal/pkg/errs"
)

func TestNewGetDispatchQueueQuery(t *testing.T) {
	q := queries.NewGetDispatchQueueQuery()
	assert.NoError(t, q.Validate())

	assert.ErrorIs(t, queries.GetDispatchQueueQuery{}.Validate(),
		queries.ErrGetDispatchQueueQueryIsNotConstructed)
}

func TestNewGetCourierStatsQuery(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	q, err := queries.NewGetCourierStatsQuery(501, services.DateFilter{Day: day})
	require.NoError(t, err)
	assert.Equal(t, int64(501), q.CourierID())
	assert.Equal(t, day, q.Filter().Day)

	all, err := queries.NewGetCourierStatsQuery(0, services.DateFilter{})
	require.NoError(t, err)
	assert.Zero(t, all.CourierID())

	_, err = queries.NewGetCourierStatsQuery(-1, services.DateFilter{})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetUserOrdersQuery(t *testing.T) {
	q, err := queries.NewGetUserOrdersQuery(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), q.UserID())

	_, err = queries.NewGetUserOrdersQuery(0)
	assert.ErrorIs(t, err, queries.ErrUserIDIsInvalid)
}

func TestNewGetAllCouriersQuery(t *testing.T) {
	q := queries.NewGetAllCouriersQuery()
	assert.NoError(t, q.Validate())
}

func TestNewGetCourierRatingQuery(t *testing.T) {
	q, err := queries.NewGetCourierRatingQuery(501)
	require.NoError(t, err)
	assert.Equal(t, int64(501), q.CourierID())

	_, err = queries.NewGetCourierRatingQuery(0)
	assert.ErrorIs(t, err, queries.ErrCourierIDIsInvalid)
}
