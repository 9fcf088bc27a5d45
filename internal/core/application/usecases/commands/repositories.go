// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// DeliveryEventRepoFactory provides access to the delivery event repository
	// within a transaction.
	DeliveryEventRepoFactory interface {
		DeliveryEventRepository() ports.DeliveryEventRepository
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ParcelUoW manages transactions for parcel operations that also need
	// courier lookups (parcel registration validates its courier).
	ParcelUoW interface {
		TxManager
		CourierRepoFactory
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// DeliveryUoW manages transactions across couriers, parcels, and delivery
	// events. Used by the delivery-recording workflow, which reads both
	// aggregates and commits the event append and the parcel state change as
	// one transaction.
	DeliveryUoW interface {
		TxManager
		CourierRepoFactory
		ParcelRepoFactory
		DeliveryEventRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
