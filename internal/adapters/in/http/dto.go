package http

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCourierRequest carries the payload for POST /couriers.
type CreateCourierRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the payload for POST /login and POST /login/admin.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AddressRequest is the nested address block of CreateParcelRequest.
type AddressRequest struct {
	Neighborhood string `json:"neighborhood" validate:"required"`
	Street       string `json:"street" validate:"required"`
	Number       int    `json:"number" validate:"required,gt=0"`
	PostalCode   string `json:"postal_code" validate:"required"`
}

// CreateParcelRequest carries the payload for POST /parcels.
type CreateParcelRequest struct {
	CourierID string         `json:"courier_id" validate:"required,uuid"`
	Recipient string         `json:"recipient" validate:"required"`
	Address   AddressRequest `json:"address" validate:"required"`
}

// CourierResponse is the read model returned by the courier endpoints.
type CourierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse identifies the authenticated account.
type LoginResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParcelResponse is one entry in a courier's parcel list.
type ParcelResponse struct {
	ID           string `json:"id"`
	Recipient    string `json:"recipient"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Number       int    `json:"number"`
	PostalCode   string `json:"postal_code"`
	Status       string `json:"status"`
}

// CreateParcelResponse returns the generated parcel ID.
type CreateParcelResponse struct {
	ID string `json:"id"`
}

// DeliveryResponse describes the recorded proof of delivery.
type DeliveryResponse struct {
	EventID         string `json:"event_id"`
	PhotoKey        string `json:"photo_key"`
	PhotoURL        string `json:"photo_url"`
	ResolvedAddress string `json:"resolved_address"`
}
