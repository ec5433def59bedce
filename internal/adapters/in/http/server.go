// Package http exposes the dispatch workflows over an echo server with
// hand-written handlers. Every error leaves as a JSON body with a message and
// the HTTP code, mapped from the application's sentinel errors.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerRiderHandler        commands.RegisterRiderCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	resolveDeliveryHandler      commands.ResolveDeliveryCommandHandler
	completeOrderHandler        commands.CompleteOrderCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	findRiderHandler             queries.FindRiderQueryHandler
	getAllRidersHandler          queries.GetAllRidersQueryHandler
	authenticateRiderHandler     queries.AuthenticateRiderQueryHandler
	getPendingDeliveriesHandler  queries.GetPendingDeliveriesQueryHandler
	getStoreNotificationsHandler queries.GetStoreNotificationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerRiderHandler commands.RegisterRiderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	resolveDeliveryHandler commands.ResolveDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	findRiderHandler queries.FindRiderQueryHandler,
	getAllRidersHandler queries.GetAllRidersQueryHandler,
	authenticateRiderHandler queries.AuthenticateRiderQueryHandler,
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
	getStoreNotificationsHandler queries.GetStoreNotificationsQueryHandler,
) *Server {
	return &Server{
		registerRiderHandler:         registerRiderHandler,
		assignRiderHandler:           assignRiderHandler,
		resolveDeliveryHandler:       resolveDeliveryHandler,
		completeOrderHandler:         completeOrderHandler,
		setRiderAvailabilityHandler:  setRiderAvailabilityHandler,
		markNotificationReadHandler:  markNotificationReadHandler,
		findRiderHandler:             findRiderHandler,
		getAllRidersHandler:          getAllRidersHandler,
		authenticateRiderHandler:     authenticateRiderHandler,
		getPendingDeliveriesHandler:  getPendingDeliveriesHandler,
		getStoreNotificationsHandler: getStoreNotificationsHandler,
	}
}

// RegisterRoutes attaches every dispatch route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/add-rider", s.AddRider)
	e.GET("/get-all-riders", s.GetAllRiders)
	e.GET("/get-rider/:identifier", s.GetRider)
	e.POST("/rider-login", s.RiderLogin)
	e.GET("/assign-rider/:orderId/:riderId/:shopId", s.AssignRider)
	e.PUT("/order-deliverd/:orderId/:riderId", s.OrderDelivered)
	e.PUT("/delivery-status/:orderId/:deliveryId", s.UpdateDeliveryStatus)
	e.PUT("/rider-availability/:riderId", s.SetRiderAvailability)
	e.GET("/pending-deliveries/:riderId", s.GetPendingDeliveries)
	e.GET("/store-notifications/:zipCode", s.GetStoreNotifications)
	e.PUT("/notification-read/:notificationId", s.MarkNotificationRead)
	e.GET("/health", s.Health)
}

// ErrorResponse is the JSON error body every failing route returns.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AddressPayload mirrors the rider's postal address in request and response bodies.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// AddRiderRequest is the POST /add-rider body.
type AddRiderRequest struct {
	PartnerID         string         `json:"partnerId"`
	Username          string         `json:"username"`
	Password          string         `json:"password"`
	FullName          string         `json:"fullName"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email"`
	AadharNumber      string         `json:"aadharNumber"`
	PanNumber         string         `json:"panNumber"`
	BikeLicenceNumber string         `json:"bikeLicenceNumber"`
	VehicleDetails    string         `json:"vehicleDetails"`
	Address           AddressPayload `json:"address"`
}

// RiderLoginRequest is the POST /rider-login body. Identifier takes a
// username or a 10-digit phone number.
type RiderLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// DeliveryStatusRequest is the PUT /delivery-status body.
type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

// RiderAvailabilityRequest is the PUT /rider-availability body.
type RiderAvailabilityRequest struct {
	Available bool `json:"available"`
}

// RiderPayload is the rider read model returned by the lookup and command routes.
type RiderPayload struct {
	ID                string         `json:"id"`
	Username          string         `json:"username"`
	FullName          string         `json:"fullName"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email"`
	AadharNumber      string         `json:"aadharNumber"`
	PanNumber         string         `json:"panNumber"`
	BikeLicenceNumber string         `json:"bikeLicenceNumber"`
	VehicleDetails    string         `json:"vehicleDetails"`
	Address           AddressPayload `json:"address"`
	Available         bool           `json:"available"`
}

// AssignmentPayload is returned by GET /assign-rider on success.
type AssignmentPayload struct {
	DeliveryID string `json:"deliveryId"`
	OrderID    string `json:"orderId"`
	RiderName  string `json:"riderName"`
	StoreID    string `json:"storeId"`
	AssignTime string `json:"assignTime"`
}

// PendingDeliveryPayload is one entry of GET /pending-deliveries.
type PendingDeliveryPayload struct {
	DeliveryID string `json:"deliveryId"`
	OrderID    string `json:"orderId"`
	StoreID    string `json:"storeId"`
	AssignTime string `json:"assignTime"`
	OrderTotal int    `json:"orderTotal"`
	ZipCode    string `json:"zipCode"`
}

// NotificationPayload is one entry of GET /store-notifications.
type NotificationPayload struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	OrderStatus string `json:"orderStatus"`
	ReadStatus  string `json:"readStatus"`
	CreatedAt   string `json:"createdAt"`
}

// AddRider handles POST /add-rider.
func (s *Server) AddRider(ctx echo.Context) error {
	var request AddRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(request.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewRegisterRiderCommand(
		partnerID,
		request.Username, request.Password, request.FullName, request.Phone, request.Email,
		request.AadharNumber, request.PanNumber, request.BikeLicenceNumber, request.VehicleDetails,
		rider.Address{
			Street:  request.Address.Street,
			City:    request.Address.City,
			State:   request.Address.State,
			ZipCode: request.Address.ZipCode,
		},
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.registerRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAllRiders handles GET /get-all-riders.
func (s *Server) GetAllRiders(ctx echo.Context) error {
	riders, err := s.getAllRidersHandler.Handle(ctx.Request().Context(), queries.NewGetAllRidersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]RiderPayload, len(riders))
	for i, r := range riders {
		response[i] = riderPayloadFromResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRider handles GET /get-rider/:identifier. The identifier is a username
// or a 10-digit phone number.
func (s *Server) GetRider(ctx echo.Context) error {
	query, err := queries.NewFindRiderQuery(ctx.Param("identifier"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.findRiderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderPayloadFromResponse(response))
}

// RiderLogin handles POST /rider-login.
func (s *Server) RiderLogin(ctx echo.Context) error {
	var request RiderLoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateRiderQuery(request.Identifier, request.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.authenticateRiderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderPayloadFromResponse(response))
}

// AssignRider handles GET /assign-rider/:orderId/:riderId/:shopId.
func (s *Server) AssignRider(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewAssignRiderCommand(ctx.Param("orderId"), riderID, ctx.Param("shopId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignmentPayload{
		DeliveryID: result.Record.ID().String(),
		OrderID:    result.Record.OrderID(),
		RiderName:  result.Rider.FullName(),
		StoreID:    result.Record.StoreID(),
		AssignTime: result.Record.AssignTime().Format(time.RFC3339),
	})
}

// OrderDelivered handles PUT /order-deliverd/:orderId/:riderId, the legacy
// completion route kept for store clients that predate /delivery-status.
func (s *Server) OrderDelivered(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewCompleteOrderCommand(ctx.Param("orderId"), riderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	freed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderPayloadFromDomain(freed))
}

// UpdateDeliveryStatus handles PUT /delivery-status/:orderId/:deliveryId.
// The body carries the target order status, Delivered or Cancelled.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	var request DeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var outcome notification.Outcome
	switch status {
	case order.Delivered:
		outcome = notification.OutcomeDelivered
	case order.Cancelled:
		outcome = notification.OutcomeCancelled
	default:
		return badRequest(ctx, "Status must be Delivered or Cancelled")
	}

	cmd, err := commands.NewResolveDeliveryCommand(ctx.Param("orderId"), deliveryID, outcome)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.resolveDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NotificationPayload{
		ID:          result.Notification.ID().String(),
		Message:     result.Notification.Message(),
		OrderStatus: string(result.Notification.OrderStatus()),
		ReadStatus:  string(result.Notification.ReadStatus()),
		CreatedAt:   result.Notification.CreatedAt().Format(time.RFC3339),
	})
}

// SetRiderAvailability handles PUT /rider-availability/:riderId.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	var request RiderAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, request.Available)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderPayloadFromDomain(updated))
}

// GetPendingDeliveries handles GET /pending-deliveries/:riderId.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	query, err := queries.NewGetPendingDeliveriesQuery(riderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	pending, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]PendingDeliveryPayload, len(pending))
	for i, p := range pending {
		response[i] = PendingDeliveryPayload{
			DeliveryID: p.DeliveryID.String(),
			OrderID:    p.OrderID,
			StoreID:    p.StoreID,
			AssignTime: p.AssignTime.Format(time.RFC3339),
			OrderTotal: p.OrderTotal,
			ZipCode:    p.ZipCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStoreNotifications handles GET /store-notifications/:zipCode.
func (s *Server) GetStoreNotifications(ctx echo.Context) error {
	zipCode, err := kernel.NewZipCode(ctx.Param("zipCode"))
	if err != nil {
		return badRequest(ctx, "Invalid zip code")
	}

	query, err := queries.NewGetStoreNotificationsQuery(zipCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	feed, err := s.getStoreNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]NotificationPayload, len(feed))
	for i, n := range feed {
		response[i] = NotificationPayload{
			ID:          n.ID.String(),
			Message:     n.Message,
			OrderStatus: n.OrderStatus,
			ReadStatus:  n.ReadStatus,
			CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /notification-read/:notificationId.
// Acknowledging an already-read entry returns it unchanged.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entry, err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NotificationPayload{
		ID:          entry.ID().String(),
		Message:     entry.Message(),
		OrderStatus: string(entry.OrderStatus()),
		ReadStatus:  string(entry.ReadStatus()),
		CreatedAt:   entry.CreatedAt().Format(time.RFC3339),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func riderPayloadFromResponse(r queries.RiderResponse) RiderPayload {
	return RiderPayload{
		ID:                r.ID.String(),
		Username:          r.Username,
		FullName:          r.FullName,
		Phone:             r.Phone,
		Email:             r.Email,
		AadharNumber:      r.AadharNumber,
		PanNumber:         r.PanNumber,
		BikeLicenceNumber: r.BikeLicenceNumber,
		VehicleDetails:    r.VehicleDetails,
		Address: AddressPayload{
			Street:  r.Street,
			City:    r.City,
			State:   r.State,
			ZipCode: r.ZipCode,
		},
		Available: r.Available,
	}
}

func riderPayloadFromDomain(r *rider.Rider) RiderPayload {
	return RiderPayload{
		ID:                r.ID().String(),
		Username:          r.Username(),
		FullName:          r.FullName(),
		Phone:             r.Phone().String(),
		Email:             r.Email(),
		AadharNumber:      r.AadharNumber(),
		PanNumber:         r.PanNumber(),
		BikeLicenceNumber: r.BikeLicenceNumber(),
		VehicleDetails:    r.VehicleDetails(),
		Address: AddressPayload{
			Street:  r.Address().Street,
			City:    r.Address().City,
			State:   r.Address().State,
			ZipCode: r.Address().ZipCode,
		},
		Available: r.Available(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Code: http.StatusBadRequest})
}

// errorJSON translates application errors into the route's JSON failure body.
// Not-found sentinels map to 404, validation and conflict errors to 400,
// anything else to 500.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var duplicate *commands.DuplicateFieldError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrRiderNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrDeliveryNotFound),
		errors.Is(err, commands.ErrPartnerNotFound),
		errors.Is(err, commands.ErrNotificationNotFound):
		code = http.StatusNotFound
	case errors.As(err, &duplicate),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderAlreadyAssigned),
		errors.Is(err, commands.ErrAssignmentInProgress),
		errors.Is(err, rider.ErrRiderAlreadyBusy),
		errors.Is(err, rider.ErrRiderAlreadyFree),
		errors.Is(err, services.ErrRiderUnavailable),
		errors.Is(err, delivery.ErrDeliveryAlreadyResolved),
		errors.Is(err, queries.ErrInvalidCredentials):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Message: err.Error(), Code: code})
}
