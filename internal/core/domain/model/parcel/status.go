package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels follow
// the delivery workflow.
//
// State transitions:
//
//	Undelivered ──┬──> EnRoute ──> Delivered
//	              │                   ^
//	              └───────────────────┘
//	        (direct delivery allowed)
//
// Delivered is a final state; a parcel reaches it only through a successfully
// recorded delivery event.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Undelivered is the initial status when a parcel is registered.
	Undelivered

	// EnRoute indicates a courier has started the delivery route for the parcel.
	EnRoute

	// Delivered indicates the parcel was handed over and a delivery event
	// was durably recorded. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Undelivered: "Undelivered",
		EnRoute:     "EnRoute",
		Delivered:   "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Undelivered: "Undelivered",
		EnRoute:     "EnRoute",
		Delivered:   "Delivered",
	}
}

// Validate checks if the Status value is one of the three valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDeliver checks whether the status allows a delivery transition
// without performing it. Undelivered and EnRoute parcels can be delivered;
// Delivered parcels cannot be delivered again.
func (s Status) ValidateDeliver() error {
	if s != Undelivered && s != EnRoute {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return nil
}

// StartRoute transitions the status to EnRoute.
//
// Valid transitions:
//   - Undelivered -> EnRoute
//
// Returns an error for any other starting state: a delivered parcel's route
// cannot be restarted and an en-route parcel is already on its way.
func (s Status) StartRoute() (Status, error) {
	if s != Undelivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start a route", s.String()),
		)
	}
	return EnRoute, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Undelivered -> Delivered (delivery without an explicit route start)
//   - EnRoute -> Delivered
//
// Delivered -> Delivered is rejected so repeated delivery attempts for the
// same parcel fail at the state machine.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateDeliver(); err != nil {
		return 0, err
	}
	return Delivered, nil
}
