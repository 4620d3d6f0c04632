package services

import (
	"sort"

	"shopbot/internal/core/domain/model/order"
)

// DispatchQueue is a domain service that builds the list of orders awaiting
// a courier.
//
// An order is dispatchable when it is pending and no courier has claimed it.
// The queue is ordered by creation time ascending, so the oldest order is
// always offered first; orders created at the same instant keep their input
// order.
type DispatchQueue struct{}

// NewDispatchQueue creates a new DispatchQueue instance.
func NewDispatchQueue() DispatchQueue {
	return DispatchQueue{}
}

// Build filters and orders the given orders into the dispatch queue.
func (DispatchQueue) Build(orders []*order.Order) ([]*order.Order, error) {
	queue := make([]*order.Order, 0, len(orders))

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.Status() == order.Pending && o.IsUnassigned() {
			queue = append(queue, o)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].CreatedAt().Before(queue[j].CreatedAt())
	})

	return queue, nil
}
