package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/middleware"
	"github.com/SergeyBogomolovv/booking-service/internal/service"
	"github.com/SergeyBogomolovv/booking-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error)
	AcceptOrder(ctx context.Context, actor entities.Actor, id string, amount float64) (entities.Order, error)
	RejectOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	DeclineOrder(ctx context.Context, actor entities.Actor, id, message string) (entities.Order, error)
	CancelOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	Quote(ctx context.Context, actor entities.Actor, id string, instant bool) (service.Quote, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, actor entities.Actor, limit, offset uint64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) error
}

// SocketServer upgrades a request to a notification stream for the recipient.
type SocketServer interface {
	Serve(w http.ResponseWriter, r *http.Request, recipientID string) error
}

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	secret        []byte
	orders        OrderService
	notifications NotificationService
	sockets       SocketServer
}

func NewHTTPHandler(logger *slog.Logger, secret []byte, orders OrderService, notifications NotificationService, sockets SocketServer) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		secret:        secret,
		orders:        orders,
		notifications: notifications,
		sockets:       sockets,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.secret))

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.RequireRoles(entities.RoleCustomer)).Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/{order_id}", h.GetOrder)
			r.Get("/{order_id}/fees", h.GetFees)
			r.With(middleware.RequireRoles(entities.RoleVendor)).Post("/{order_id}/accept", h.AcceptOrder)
			r.With(middleware.RequireRoles(entities.RoleVendor)).Post("/{order_id}/reject", h.RejectOrder)
			r.With(middleware.RequireRoles(entities.RoleCustomer)).Post("/{order_id}/decline", h.DeclineOrder)
			r.With(middleware.RequireRoles(entities.RoleCustomer, entities.RoleAdmin)).Post("/{order_id}/cancel", h.CancelOrder)
		})

		r.Get("/notifications", h.ListNotifications)
		r.Post("/notifications/{id}/read", h.MarkNotificationRead)
		r.Get("/ws", h.Subscribe)
	})
}

// CreateOrder books a vendor package.
// @Summary      Create order
// @Description  Creates a pending order after availability and conflict checks
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        body  body      CreateOrderRequest  true  "Booking request"
// @Success      201   {object}  Order
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      404   {object}  utils.ErrorResponse
// @Failure      409   {object}  utils.ErrorResponse  "Vendor busy or already booked"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req.ToInput(actor.ID))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders returns the caller's orders, newest first.
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Param        status  query     []string  false  "Filter by status"  collectionFormat(multi)
// @Param        limit   query     int       false  "Page size (max 100)"
// @Param        offset  query     int       false  "Offset"
// @Success      200     {array}   Order
// @Failure      400     {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	filter, err := parseOrderFilter(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), actor, filter)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder returns an order by id.
// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order id, e.g. ORD-000001"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	order, err := h.orders.GetOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetFees returns the fee breakdown of an order.
// @Summary      Order fees
// @Description  Customers get the customer view, vendors the vendor view, admins both
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true   "Order id"
// @Param        instant   query     bool    false  "Instant transfer"
// @Success      200       {object}  Fees
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/fees [get]
func (h *HTTPHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var instant bool
	if v := r.URL.Query().Get("instant"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteError(w, "instant must be a boolean", http.StatusBadRequest)
			return
		}
		instant = parsed
	}

	quote, err := h.orders.Quote(r.Context(), actor, chi.URLParam(r, "order_id"), instant)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, QuoteToJSON(quote), http.StatusOK)
}

// AcceptOrder accepts a pending order at the given amount.
// @Summary      Accept order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order_id  path      string              true  "Order id"
// @Param        body      body      AcceptOrderRequest  true  "Agreed amount"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/accept [post]
func (h *HTTPHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req AcceptOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.AcceptOrder(r.Context(), actor, chi.URLParam(r, "order_id"), req.Amount)
	h.writeOrder(r.Context(), w, order, err)
}

// RejectOrder rejects a pending order.
// @Summary      Reject order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  Order
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/reject [post]
func (h *HTTPHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	order, err := h.orders.RejectOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	h.writeOrder(r.Context(), w, order, err)
}

// DeclineOrder turns down an accepted order.
// @Summary      Decline order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order_id  path      string               true  "Order id"
// @Param        body      body      DeclineOrderRequest  true  "Reason"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/decline [post]
func (h *HTTPHandler) DeclineOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req DeclineOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.DeclineOrder(r.Context(), actor, chi.URLParam(r, "order_id"), req.Message)
	h.writeOrder(r.Context(), w, order, err)
}

// CancelOrder cancels an order.
// @Summary      Cancel order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  Order
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	order, err := h.orders.CancelOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	h.writeOrder(r.Context(), w, order, err)
}

// ListNotifications returns the caller's notifications, newest first.
// @Summary      List notifications
// @Tags         notifications
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   Notification
// @Router       /notifications [get]
func (h *HTTPHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	limit, offset, err := parsePage(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	list, err := h.notifications.ListNotifications(r.Context(), actor, limit, offset)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, NotificationsEntityToJSON(list), http.StatusOK)
}

// MarkNotificationRead marks one of the caller's notifications as read.
// @Summary      Mark notification read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /notifications/{id}/read [post]
func (h *HTTPHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	if err := h.notifications.MarkRead(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Subscribe upgrades to a websocket streaming the caller's notifications.
// @Summary      Notification stream
// @Tags         notifications
// @Param        token  query  string  false  "JWT when the Authorization header cannot be set"
// @Success      101
// @Router       /ws [get]
func (h *HTTPHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	if err := h.sockets.Serve(w, r, actor.ID); err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
	}
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeOrder(ctx context.Context, w http.ResponseWriter, order entities.Order, err error) {
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// writeError answers with the status of the error's kind. Anything outside
// the taxonomy is logged and hidden behind a 500.
func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var e *entities.Error
	if !errors.As(err, &e) {
		h.logger.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if e.Kind == entities.KindExternal {
		h.logger.ErrorContext(ctx, "external dependency failed", slog.Any("error", err))
	}
	utils.WriteError(w, e.Message, e.StatusCode())
}

func parseOrderFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter
	for _, s := range r.URL.Query()["status"] {
		status, err := entities.ParseOrderStatus(s)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	limit, offset, err := parsePage(r)
	if err != nil {
		return entities.OrderFilter{}, err
	}
	filter.Limit, filter.Offset = limit, offset
	return filter, nil
}

func parsePage(r *http.Request) (limit, offset uint64, err error) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, entities.Validation("limit must be a non-negative integer")
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, entities.Validation("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
