package queries

import (
	"context"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/services"
	"shopbot/internal/core/ports"
)

// GetCourierStatsQueryHandler computes courier sales reports. The report
// scans the full order history so rate changes and late deliveries are
// always reflected; the aggregation rules live in the domain service.
type GetCourierStatsQueryHandler struct {
	orderRepo      ports.OrderRepository
	aggregator     services.StatsAggregator
	commissionRate float64
}

// NewGetCourierStatsQueryHandler creates a handler for courier stats
// retrieval. The commission rate is the fallback for orders delivered
// before commission freezing.
func NewGetCourierStatsQueryHandler(orderRepo ports.OrderRepository, commissionRate float64) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{
		orderRepo:      orderRepo,
		aggregator:     services.NewStatsAggregator(commissionRate),
		commissionRate: commissionRate,
	}
}

// Handle executes the query.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) ([]GetCourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var stats []services.CourierStats
	if query.CourierID() != 0 {
		single, aggErr := h.aggregator.AggregateForCourier(query.CourierID(), orders, query.Filter())
		if aggErr != nil {
			return nil, aggErr
		}
		stats = []services.CourierStats{single}
	} else {
		stats, err = h.aggregator.Aggregate(orders, query.Filter())
		if err != nil {
			return nil, err
		}
	}

	responses := make([]GetCourierStatsQueryResponse, 0, len(stats))
	for _, s := range stats {
		responses = append(responses, h.toStatsResponse(s))
	}

	return responses, nil
}

func (h GetCourierStatsQueryHandler) toStatsResponse(s services.CourierStats) GetCourierStatsQueryResponse {
	resp := GetCourierStatsQueryResponse{
		CourierID:       s.CourierID,
		Count:           s.Count,
		TotalSales:      s.TotalSales,
		TotalCommission: s.TotalCommission,
		Orders:          make([]CourierStatsOrder, 0, len(s.Orders)),
	}

	for _, o := range s.Orders {
		resp.Orders = append(resp.Orders, CourierStatsOrder{
			UserID:      o.UserID(),
			OrderID:     o.ID(),
			ProductName: o.ProductName(),
			Total:       o.Total(),
			Commission:  h.orderCommission(o),
			DeliveredAt: o.StatsDate(),
		})
	}

	return resp
}

func (h GetCourierStatsQueryHandler) orderCommission(o *order.Order) int64 {
	if frozen := o.FrozenCommission(); frozen != nil {
		return *frozen
	}
	return order.Commission(o.Total(), h.commissionRate)
}
