// Package deliveryevent implements the DeliveryEvent record of the parcel
// tracking domain: an immutable, append-only proof-of-delivery entry tying a
// parcel and its courier to coordinates, a resolved address, a stored photo,
// and a timestamp.
package deliveryevent
