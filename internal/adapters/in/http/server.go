// Package http exposes the application's use cases over an echo HTTP API.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/metrics"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler    commands.CreateCourierCommandHandler
	createParcelHandler     commands.CreateParcelCommandHandler
	startParcelRouteHandler commands.StartParcelRouteCommandHandler
	recordDeliveryHandler   commands.RecordDeliveryCommandHandler

	// Query handlers
	getAllCouriersHandler      queries.GetAllCouriersQueryHandler
	getCourierByIDHandler      queries.GetCourierByIDQueryHandler
	getParcelsByCourierHandler queries.GetParcelsByCourierQueryHandler
	loginCourierHandler        queries.LoginCourierQueryHandler
	loginAdminHandler          queries.LoginAdminQueryHandler

	// Directory proof-of-delivery photos are served from
	uploadsDir string
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	startParcelRouteHandler commands.StartParcelRouteCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getCourierByIDHandler queries.GetCourierByIDQueryHandler,
	getParcelsByCourierHandler queries.GetParcelsByCourierQueryHandler,
	loginCourierHandler queries.LoginCourierQueryHandler,
	loginAdminHandler queries.LoginAdminQueryHandler,
	uploadsDir string,
) *Server {
	return &Server{
		createCourierHandler:       createCourierHandler,
		createParcelHandler:        createParcelHandler,
		startParcelRouteHandler:    startParcelRouteHandler,
		recordDeliveryHandler:      recordDeliveryHandler,
		getAllCouriersHandler:      getAllCouriersHandler,
		getCourierByIDHandler:      getCourierByIDHandler,
		getParcelsByCourierHandler: getParcelsByCourierHandler,
		loginCourierHandler:        loginCourierHandler,
		loginAdminHandler:          loginAdminHandler,
		uploadsDir:                 uploadsDir,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/couriers", s.GetCouriers)
	e.POST("/couriers", s.CreateCourier)
	e.GET("/couriers/:courierId", s.GetCourierByID)
	e.GET("/couriers/:courierId/parcels", s.GetParcelsByCourier)
	e.POST("/login", s.LoginCourier)
	e.POST("/login/admin", s.LoginAdmin)
	e.POST("/parcels", s.CreateParcel)
	e.POST("/parcels/:parcelId/route", s.StartParcelRoute)
	e.POST("/deliveries", s.RecordDelivery)

	e.Static("/uploads", s.uploadsDir)
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCouriers handles GET /couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = CourierResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Email: c.Email,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request CreateCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(request.Name, request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.CouriersCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.CourierID().String()})
}

// GetCourierByID handles GET /couriers/:courierId - retrieves one courier.
func (s *Server) GetCourierByID(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	query, err := queries.NewGetCourierByIDQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courier, err := s.getCourierByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierResponse{
		ID:    courier.ID.String(),
		Name:  courier.Name,
		Email: courier.Email,
	})
}

// GetParcelsByCourier handles GET /couriers/:courierId/parcels - lists the
// parcels assigned to a courier.
func (s *Server) GetParcelsByCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	query, err := queries.NewGetParcelsByCourierQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.getParcelsByCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:           p.ID.String(),
			Recipient:    p.Recipient,
			Neighborhood: p.Neighborhood,
			Street:       p.Street,
			Number:       p.Number,
			PostalCode:   p.PostalCode,
			Status:       p.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LoginCourier handles POST /login - authenticates a courier.
func (s *Server) LoginCourier(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := ctx.Validate(&request); err != nil {
		return err
	}

	query, err := queries.NewLoginCourierQuery(request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courier, err := s.loginCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		ID:   courier.CourierID.String(),
		Name: courier.Name,
	})
}

// LoginAdmin handles POST /login/admin - authenticates an administrator.
func (s *Server) LoginAdmin(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := ctx.Validate(&request); err != nil {
		return err
	}

	query, err := queries.NewLoginAdminQuery(request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	admin, err := s.loginAdminHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		ID:   admin.AdminID.String(),
		Name: admin.Name,
	})
}

// CreateParcel handles POST /parcels - registers a parcel assigned to a
// courier.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := ctx.Validate(&request); err != nil {
		return err
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	address, err := parcel.NewAddress(
		request.Address.Neighborhood,
		request.Address.Street,
		request.Address.Number,
		request.Address.PostalCode,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(courierID, request.Recipient, address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.ParcelsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, CreateParcelResponse{ID: cmd.ParcelID().String()})
}

// StartParcelRoute handles POST /parcels/:parcelId/route - marks a parcel as
// en route.
func (s *Server) StartParcelRoute(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	cmd, err := commands.NewStartParcelRouteCommand(parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startParcelRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDelivery handles POST /deliveries - records a proof of delivery from
// a multipart form carrying courier_id, parcel_id, latitude, longitude and
// the photo file.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.FormValue("parcel_id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	courierID, err := kernel.UUIDFromString(ctx.FormValue("courier_id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	latitude, err := strconv.ParseFloat(ctx.FormValue("latitude"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid latitude")
	}

	longitude, err := strconv.ParseFloat(ctx.FormValue("longitude"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid longitude")
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return badRequest(ctx, "Photo file is required")
	}

	photo, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Photo file is unreadable")
	}
	defer func() {
		_ = photo.Close()
	}()

	cmd, err := commands.NewRecordDeliveryCommand(parcelID, courierID, point, fileHeader.Filename, photo)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	metrics.DeliveriesRecordedTotal.Inc()
	return ctx.JSON(http.StatusCreated, DeliveryResponse{
		EventID:         result.EventID.String(),
		PhotoKey:        result.PhotoKey,
		PhotoURL:        result.PhotoURL,
		ResolvedAddress: result.ResolvedAddress,
	})
}
