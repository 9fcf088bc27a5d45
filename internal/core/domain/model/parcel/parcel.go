package parcel

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel factory method.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrRecipientIsRequired is returned when the recipient name is blank.
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient")
)

// Parcel represents a shipment in the system. It is the aggregate root that
// manages the parcel lifecycle from registration through delivery.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a validated destination address
//   - Must have a non-empty recipient name
//   - Is always assigned to exactly one courier; the assignment is immutable
//   - Status transitions follow Undelivered -> EnRoute -> Delivered, with
//     Delivered reachable only through a recorded delivery event
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// courierID is the assigned courier, set at creation and never changed
	courierID kernel.UUID

	// address is the delivery destination
	address Address

	// recipient is the name of the person receiving the parcel
	recipient string

	// status is the current state in the parcel lifecycle
	status Status

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel assigned to the given courier.
// The parcel starts in Undelivered status. All inputs are validated and
// validation errors are aggregated.
func NewParcel(id kernel.UUID, address Address, recipient string, courierID kernel.UUID) (*Parcel, error) {
	parcel := &Parcel{
		status:        Undelivered,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setAddress(address),
		parcel.setRecipient(recipient),
		parcel.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage with
// an explicit status. Used by repositories when mapping database rows back
// into the domain.
func RestoreParcel(
	id kernel.UUID,
	address Address,
	recipient string,
	courierID kernel.UUID,
	status Status,
) (*Parcel, error) {
	parcel, err := NewParcel(id, address, recipient, courierID)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	parcel.status = status

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// CourierID returns the identifier of the assigned courier.
func (p *Parcel) CourierID() kernel.UUID {
	return p.courierID
}

// Address returns the delivery destination.
func (p *Parcel) Address() Address {
	return p.address
}

// Recipient returns the recipient's name.
func (p *Parcel) Recipient() string {
	return p.recipient
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// IsAssignedTo reports whether the parcel is assigned to the given courier.
// The delivery workflow refuses to record events for any other courier.
func (p *Parcel) IsAssignedTo(courierID kernel.UUID) bool {
	return p.courierID.IsEqual(courierID)
}

// StartRoute marks the parcel as EnRoute.
// Returns an error unless the parcel is currently Undelivered.
func (p *Parcel) StartRoute() error {
	newStatus, err := p.status.StartRoute()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Deliver marks the parcel as Delivered.
//
// Valid from Undelivered or EnRoute; a Delivered parcel cannot be delivered
// again. Callers must only invoke this after the corresponding delivery
// event has been added to the same transaction, so the two writes commit
// together.
func (p *Parcel) Deliver() error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Parcel) setRecipient(recipient string) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrRecipientIsRequired
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.courierID = courierID
	return nil
}
