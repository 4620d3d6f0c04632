package queries

import (
	"context"
	"fmt"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/services"
	"shopbot/internal/core/ports"
)

// GetDispatchQueueQueryHandler builds the dispatch queue read model. The
// ordering and filtering rules live in the domain service; the handler only
// loads candidates and flattens them for display.
type GetDispatchQueueQueryHandler struct {
	orderRepo ports.OrderRepository
	queue     services.DispatchQueue
}

// NewGetDispatchQueueQueryHandler creates a handler for dispatch queue
// retrieval.
func NewGetDispatchQueueQueryHandler(orderRepo ports.OrderRepository) GetDispatchQueueQueryHandler {
	return GetDispatchQueueQueryHandler{
		orderRepo: orderRepo,
		queue:     services.NewDispatchQueue(),
	}
}

// Handle executes the query.
func (h GetDispatchQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchQueueQuery,
) ([]GetDispatchQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.orderRepo.GetAllPendingUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	ordered, err := h.queue.Build(candidates)
	if err != nil {
		return nil, err
	}

	responses := make([]GetDispatchQueueQueryResponse, 0, len(ordered))
	for _, o := range ordered {
		responses = append(responses, GetDispatchQueueQueryResponse{
			UserID:      o.UserID(),
			OrderID:     o.ID(),
			ProductName: o.ProductName(),
			Quantity:    o.Quantity(),
			Total:       o.Total(),
			Destination: formatAddress(o.Destination()),
			Comment:     o.Comment(),
			CreatedAt:   o.CreatedAt(),
		})
	}

	return responses, nil
}

func formatAddress(addr kernel.Address) string {
	if addr.HasGeo() {
		geo := addr.Geo()
		return fmt.Sprintf("%.6f,%.6f", geo.Lat(), geo.Lon())
	}
	return addr.Text()
}
