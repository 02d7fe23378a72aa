// Package http exposes the order lifecycle and driver registry over REST.
package http

import (
	"errors"
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/driver"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	borrowOrderHandler           commands.BorrowOrderCommandHandler
	assignDriverHandler          commands.AssignDriverCommandHandler
	returnOrderHandler           commands.ReturnOrderCommandHandler
	deliverOrderHandler          commands.DeliverOrderCommandHandler
	registerDriverHandler        commands.RegisterDriverCommandHandler
	signUpDriverHandler          commands.SignUpDriverCommandHandler
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler

	// Query handlers
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getAllDriversHandler      queries.GetAllDriversQueryHandler
	getDriverHandler          queries.GetDriverQueryHandler
	getAvailableDriverHandler queries.GetAvailableDriverQueryHandler
	getDeliveryHandler        queries.GetDeliveryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	borrowOrderHandler commands.BorrowOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	signUpDriverHandler commands.SignUpDriverCommandHandler,
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	getAvailableDriverHandler queries.GetAvailableDriverQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		borrowOrderHandler:           borrowOrderHandler,
		assignDriverHandler:          assignDriverHandler,
		returnOrderHandler:           returnOrderHandler,
		deliverOrderHandler:          deliverOrderHandler,
		registerDriverHandler:        registerDriverHandler,
		signUpDriverHandler:          signUpDriverHandler,
		setDriverAvailabilityHandler: setDriverAvailabilityHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getOrderHandler:              getOrderHandler,
		getAllDriversHandler:         getAllDriversHandler,
		getDriverHandler:             getDriverHandler,
		getAvailableDriverHandler:    getAvailableDriverHandler,
		getDeliveryHandler:           getDeliveryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.POST("/orders/:order_id/borrow", s.BorrowOrder)
	api.POST("/orders/:order_id/assign", s.AssignDriver)
	api.POST("/orders/:order_id/return", s.ReturnOrder)
	api.POST("/orders/:order_id/delivered", s.DeliverOrder)

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/signup", s.SignUpDriver)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/available", s.GetAvailableDriver)
	api.GET("/drivers/:driver_id", s.GetDriver)
	api.PUT("/drivers/:driver_id/availability", s.SetDriverAvailability)

	api.GET("/deliveries/:order_id", s.GetDelivery)
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	OrderID          string `json:"order_id"`
	ClientName       string `json:"client_name"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
	PackageInfo      string `json:"package_info"`
}

// AssignRequest is the request body for driver assignment.
type AssignRequest struct {
	DriverID string `json:"driver_id"`
}

// NewDriver is the request body for minimal driver registration. The driver
// id is optional; a server-generated one is used when absent.
type NewDriver struct {
	DriverID string `json:"driver_id"`
	Name     string `json:"name"`
}

// DriverSignUp is the request body for full driver signup.
type DriverSignUp struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// AvailabilityRequest is the request body for the availability toggle.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// Order is the JSON view of an order aggregate.
type Order struct {
	OrderID          string     `json:"order_id"`
	ClientName       string     `json:"client_name"`
	PickupLocation   string     `json:"pickup_location"`
	DeliveryLocation string     `json:"delivery_location"`
	PackageInfo      string     `json:"package_info,omitempty"`
	Status           string     `json:"status"`
	DriverID         *string    `json:"driver_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	BorrowedAt       *time.Time `json:"borrowed_at,omitempty"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
}

// Driver is the JSON view of a driver aggregate.
type Driver struct {
	DriverID      string    `json:"driver_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

// Delivery is the JSON view of a delivery record.
type Delivery struct {
	OrderID        string `json:"order_id"`
	DeliveryStatus string `json:"delivery_status"`
	Address        string `json:"address"`
	DriverID       string `json:"driver_id"`
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, body.ClientName, body.PickupLocation, body.DeliveryLocation, body.PackageInfo)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderView(created))
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, row := range orders {
		response[i] = Order{
			OrderID:          row.OrderID,
			ClientName:       row.ClientName,
			PickupLocation:   row.PickupLocation,
			DeliveryLocation: row.DeliveryLocation,
			PackageInfo:      row.PackageInfo,
			Status:           row.Status,
			DriverID:         row.DriverID,
			CreatedAt:        row.CreatedAt,
			BorrowedAt:       row.BorrowedAt,
			AssignedAt:       row.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:order_id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		OrderID:          row.OrderID,
		ClientName:       row.ClientName,
		PickupLocation:   row.PickupLocation,
		DeliveryLocation: row.DeliveryLocation,
		PackageInfo:      row.PackageInfo,
		Status:           row.Status,
		DriverID:         row.DriverID,
		CreatedAt:        row.CreatedAt,
		BorrowedAt:       row.BorrowedAt,
		AssignedAt:       row.AssignedAt,
	})
}

// BorrowOrder handles POST /api/v1/orders/:order_id/borrow - stages an order
// for loading.
func (s *Server) BorrowOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewBorrowOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	updated, err := s.borrowOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// AssignDriver handles POST /api/v1/orders/:order_id/assign - commits a
// driver to a borrowed order.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body AssignRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.DriverIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	updated, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// ReturnOrder handles POST /api/v1/orders/:order_id/return - puts an order
// back on the shelf.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewReturnOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	updated, err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// DeliverOrder handles POST /api/v1/orders/:order_id/delivered - completes an
// assigned order.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	updated, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(updated))
}

// RegisterDriver handles POST /api/v1/drivers - registers a driver with just
// a name, under a caller-provided id or a server-generated one.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewDriverID()
	if body.DriverID != "" {
		var err error
		driverID, err = kernel.DriverIDFromString(body.DriverID)
		if err != nil {
			return badRequest(ctx, "Invalid driver id: "+err.Error())
		}
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	created, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverView(created))
}

// SignUpDriver handles POST /api/v1/drivers/signup - registers a driver with
// full contact details.
func (s *Server) SignUpDriver(ctx echo.Context) error {
	var body DriverSignUp
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSignUpDriverCommand(body.Name, body.Email, body.Phone, body.LicenseNumber)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	created, err := s.signUpDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverView(created))
}

// GetDrivers handles GET /api/v1/drivers - retrieves all drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, row := range drivers {
		response[i] = Driver{
			DriverID:      row.DriverID,
			Name:          row.Name,
			Email:         deref(row.Email),
			Phone:         deref(row.Phone),
			LicenseNumber: deref(row.LicenseNumber),
			Available:     row.Available,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableDriver handles GET /api/v1/drivers/available - picks one
// available driver, 404 when the fleet is exhausted.
func (s *Server) GetAvailableDriver(ctx echo.Context) error {
	query := queries.NewGetAvailableDriverQuery()

	picked, err := s.getAvailableDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"driver_id": picked.DriverID,
		"name":      picked.Name,
	})
}

// GetDriver handles GET /api/v1/drivers/:driver_id - retrieves a single driver.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.DriverIDFromString(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	row, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Driver{
		DriverID:      row.DriverID,
		Name:          row.Name,
		Email:         deref(row.Email),
		Phone:         deref(row.Phone),
		LicenseNumber: deref(row.LicenseNumber),
		Available:     row.Available,
		CreatedAt:     row.CreatedAt,
	})
}

// SetDriverAvailability handles PUT /api/v1/drivers/:driver_id/availability -
// toggles the availability flag directly.
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	driverID, err := kernel.DriverIDFromString(ctx.Param("driver_id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	var body AvailabilityRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, body.Available)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	updated, err := s.setDriverAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverView(updated))
}

// GetDelivery handles GET /api/v1/deliveries/:order_id - retrieves the
// delivery record of an order.
func (s *Server) GetDelivery(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	row, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Delivery{
		OrderID:        row.OrderID,
		DeliveryStatus: row.DeliveryStatus,
		Address:        row.Address,
		DriverID:       row.DriverID,
	})
}

// orderView converts an order aggregate to its JSON representation.
func orderView(o *order.Order) Order {
	view := Order{
		OrderID:          o.ID().String(),
		ClientName:       o.ClientName(),
		PickupLocation:   o.PickupLocation(),
		DeliveryLocation: o.DeliveryLocation(),
		PackageInfo:      o.PackageInfo(),
		Status:           o.Status().String(),
		CreatedAt:        o.CreatedAt(),
		BorrowedAt:       o.BorrowedAt(),
		AssignedAt:       o.AssignedAt(),
	}

	if d := o.Driver(); d != nil {
		id := d.String()
		view.DriverID = &id
	}

	return view
}

// driverView converts a driver aggregate to its JSON representation.
func driverView(d *driver.Driver) Driver {
	return Driver{
		DriverID:      d.ID().String(),
		Name:          d.Name(),
		Email:         d.Email(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		Available:     d.IsAvailable(),
		CreatedAt:     d.CreatedAt(),
	}
}

// errorResponse maps a use case error to the matching HTTP status.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
