package service

import (
	"context"
)

// AllocationCommittedEvent records one order line's stock decrement for
// downstream consumers (reporting, channel sync).
type AllocationCommittedEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	ProductID     int64  `json:"product_id"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Qty           int64  `json:"qty"`
	WasClosest    bool   `json:"was_closest"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAllocationCommitted publishes a commit event for async processing
	PublishAllocationCommitted(ctx context.Context, event *AllocationCommittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
