// Package services contains stateless domain services that operate over
// collections of aggregates: the dispatch queue view for couriers and the
// per-courier sales aggregation.
package services
