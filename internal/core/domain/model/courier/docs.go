// Package courier implements the Courier aggregate of the parcel tracking
// domain. A courier is the party responsible for delivering parcels; the
// aggregate owns courier identity and the login credential hash. Assignment
// of parcels to couriers is modeled on the Parcel aggregate.
package courier
