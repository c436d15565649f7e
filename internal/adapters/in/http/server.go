// Package http exposes the order lifecycle over a REST API plus the
// websocket endpoint for real-time updates. Handlers translate requests
// into commands and queries; all business rules live below this layer.
package http

import (
	"net/http"

	"laundromart/internal/adapters/out/ws"
	"laundromart/internal/core/application/eventing"
	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	editOrderHandler   commands.EditOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler
	selectShopHandler  commands.SelectShopCommandHandler
	advanceHandler     commands.AdvanceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	customerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
	riderOrdersHandler     queries.GetRiderOrdersQueryHandler
	shopOrdersHandler      queries.GetShopOrdersQueryHandler
	shopCapacityHandler    queries.GetShopCapacityQueryHandler

	hub        *ws.Hub
	authSecret string
}

// NewServer creates the HTTP server facade.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	selectShopHandler commands.SelectShopCommandHandler,
	advanceHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	riderOrdersHandler queries.GetRiderOrdersQueryHandler,
	shopOrdersHandler queries.GetShopOrdersQueryHandler,
	shopCapacityHandler queries.GetShopCapacityQueryHandler,
	hub *ws.Hub,
	authSecret string,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		editOrderHandler:       editOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		selectShopHandler:      selectShopHandler,
		advanceHandler:         advanceHandler,
		cancelOrderHandler:     cancelOrderHandler,
		customerOrdersHandler:  customerOrdersHandler,
		availableOrdersHandler: availableOrdersHandler,
		riderOrdersHandler:     riderOrdersHandler,
		shopOrdersHandler:      shopOrdersHandler,
		shopCapacityHandler:    shopCapacityHandler,
		hub:                    hub,
		authSecret:             authSecret,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	authed := e.Group("", AuthMiddleware(s.authSecret))
	authed.GET("/ws", s.ServeWS)

	api := authed.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/my", s.GetCustomerOrders)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/tasks", s.GetRiderOrders)
	api.PATCH("/orders/:id", s.EditOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/shop", s.SelectShop)
	api.POST("/orders/:id/handover", s.HandoverOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/shops/:id/orders", s.GetShopOrders)
	api.GET("/shops/:id/capacity", s.GetShopCapacity)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ServeWS handles GET /ws - upgrades the authenticated caller into the
// real-time hub.
func (s *Server) ServeWS(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	identity := ws.Identity{
		UserID:  actor.ID.String(),
		IsRider: actor.Role == kernel.RoleRider,
	}
	if actor.ShopID != nil {
		identity.ShopID = actor.ShopID.String()
	}

	return s.hub.Serve(c.Response(), c.Request(), identity)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleCustomer {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "create order"))
	}

	var request createOrderRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	details, err := request.toDetails()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor.ID, details)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, eventing.NewOrderEvent(created))
}

// GetCustomerOrders handles GET /api/v1/orders/my - the caller's order
// history, optionally filtered with ?status=.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(c, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID, statusFilter)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.customerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetAvailableOrders handles GET /api/v1/orders/available - the unclaimed
// pool riders pick work from.
func (s *Server) GetAvailableOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleRider {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "list available orders"))
	}

	orders, err := s.availableOrdersHandler.Handle(
		c.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetRiderOrders handles GET /api/v1/orders/tasks - the rider's claimed,
// unfinished orders.
func (s *Server) GetRiderOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleRider {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "list active orders"))
	}

	query, err := queries.NewGetRiderOrdersQuery(actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.riderOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// EditOrder handles PATCH /api/v1/orders/:id.
func (s *Server) EditOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var request editOrderRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	patch, err := request.toPatch()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewEditOrderCommand(orderID, actor, patch)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.editOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - a rider claims a
// pending order.
func (s *Server) AcceptOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleRider {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "accept order"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	claimed, err := s.acceptOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(claimed))
}

// SelectShop handles POST /api/v1/orders/:id/shop - the assigned rider
// picks (or clears) the shop before handover.
func (s *Server) SelectShop(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleRider {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "select shop"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var request selectShopRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	shopID, err := parseOptionalUUID(request.ShopID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewSelectShopCommand(orderID, actor.ID, shopID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.selectShopHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(updated))
}

// HandoverOrder handles POST /api/v1/orders/:id/handover - the rider
// drops the order at a shop. Shorthand for advancing to at_shop, so the
// capacity gate applies.
func (s *Server) HandoverOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.Role != kernel.RoleRider {
		return respondError(c, errs.NewForbiddenError(actor.Role.String(), "hand over order"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var request selectShopRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	shopID, err := parseOptionalUUID(request.ShopID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actor, order.StatusAtShop, shopID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.advanceHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(updated))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - a role-gated
// transition to the requested status.
func (s *Server) AdvanceOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var request advanceOrderRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	to, err := order.StatusFromString(request.To)
	if err != nil {
		return respondError(c, err)
	}

	shopID, err := parseOptionalUUID(request.ShopID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actor, to, shopID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.advanceHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Riders release their
// claim; customers and admins cancel for good.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, eventing.NewOrderEvent(updated))
}

// GetShopOrders handles GET /api/v1/shops/:id/orders - the shop's work
// queue.
func (s *Server) GetShopOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	shopID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	if err := requireShopAccess(actor, shopID); err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetShopOrdersQuery(shopID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.shopOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetShopCapacity handles GET /api/v1/shops/:id/capacity - the machine
// usage snapshot riders consult before handover.
func (s *Server) GetShopCapacity(c echo.Context) error {
	if _, err := actorFrom(c); err != nil {
		return err
	}

	shopID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetShopCapacityQuery(shopID)
	if err != nil {
		return respondError(c, err)
	}

	capacity, err := s.shopCapacityHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, capacity)
}
