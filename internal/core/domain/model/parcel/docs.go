// Package parcel implements the Parcel aggregate of the parcel tracking
// domain. A parcel is a shipment with a destination address, a recipient,
// an immutable courier assignment, and a three-state delivery lifecycle
// (Undelivered, EnRoute, Delivered). Delivered is terminal and is reached
// only through the delivery-recording workflow.
package parcel
