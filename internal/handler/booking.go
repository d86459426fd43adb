package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/f1-ticket-booking/internal/booking"
	"github.com/iliyamo/f1-ticket-booking/internal/model"
	"github.com/iliyamo/f1-ticket-booking/internal/queue"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// BookingHandler exposes the booking engine and the ticket ledger. All
// endpoints sit behind JWT authentication. Publish is optional: when set,
// successful bookings emit a ticket.issued event, and publish failures
// are logged but never fail the booking — the ticket is already committed.
type BookingHandler struct {
	Store   store.Store
	Engine  *booking.Engine
	Publish func(ctx context.Context, ev queue.TicketIssuedEvent) error
}

func NewBookingHandler(s store.Store, e *booking.Engine) *BookingHandler {
	return &BookingHandler{Store: s, Engine: e}
}

type bookReq struct {
	Quantity int `json:"quantity"`
}

type ticketResp struct {
	ID        string `json:"id"`
	EventName string `json:"event_name"`
	AreaName  string `json:"area_name"`
	RaceDate  string `json:"race_date"`
	Quantity  int    `json:"quantity"`
	TotalUSD  string `json:"total_usd"`
	BookedAt  string `json:"booked_at"`
}

func toTicketResp(t model.Ticket) ticketResp {
	return ticketResp{
		ID:        t.ID,
		EventName: t.EventName,
		AreaName:  t.AreaName,
		RaceDate:  t.RaceDate,
		Quantity:  t.Quantity,
		TotalUSD:  t.TotalUSD.StringFixed(2),
		BookedAt:  t.BookedAt.Format(time.RFC3339),
	}
}

// Book handles POST /v1/areas/:id/book. Failure kinds map to distinct
// statuses so the presentation layer can show an actionable message:
// 400 invalid quantity, 402 insufficient funds, 404 unknown area,
// 409 insufficient inventory (with tickets_left), 503 persistence failure.
func (h *BookingHandler) Book(c echo.Context) error {
	accountID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	areaID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || areaID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seating area id"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	ticket, err := h.Engine.Book(ctx, accountID, areaID, req.Quantity)
	if err != nil {
		var inv *booking.InventoryError
		switch {
		case errors.Is(err, booking.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.As(err, &inv):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":        inv.Error(),
				"tickets_left": inv.Left,
			})
		case errors.Is(err, booking.ErrInsufficientFunds):
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seating area not found"})
		case errors.Is(err, booking.ErrPersistence):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking could not be completed, please retry"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	if h.Publish != nil {
		ev := queue.NewTicketIssuedEvent(ticket)
		if err := h.Publish(context.Background(), ev); err != nil {
			log.Printf("booking: publish ticket.issued for %s failed: %v", ticket.ID, err)
		}
	}

	return c.JSON(http.StatusCreated, toTicketResp(ticket))
}

// MyTickets handles GET /v1/tickets: the account's tickets in booking order.
func (h *BookingHandler) MyTickets(c echo.Context) error {
	accountID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Store.TicketsByAccount(ctx, accountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]ticketResp, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResp(t))
	}
	return c.JSON(http.StatusOK, out)
}
