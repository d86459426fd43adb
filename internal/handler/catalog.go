package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// CatalogHandler serves the read-only event catalog. It needs the INR→USD
// rate only to show seating-area prices in the settlement currency next
// to the reference price.
type CatalogHandler struct {
	Store      store.Store
	RateINRUSD decimal.Decimal
}

func NewCatalogHandler(s store.Store, rateINRUSD decimal.Decimal) *CatalogHandler {
	return &CatalogHandler{Store: s, RateINRUSD: rateINRUSD}
}

type eventResp struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	RaceDate  string `json:"race_date"`
	ImagePath string `json:"image_path"`
}

type areaResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	PriceINR    string `json:"price_inr"`
	PriceUSD    string `json:"price_usd"`
	TicketsLeft int    `json:"tickets_left"`
	SoldOut     bool   `json:"sold_out"`
}

// ListEvents handles GET /v1/events: all Grands Prix in seed order.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Store.Events(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]eventResp, 0, len(events))
	for _, e := range events {
		out = append(out, eventResp{
			ID: e.ID, Name: e.Name, Country: e.Country, RaceDate: e.RaceDate, ImagePath: e.ImagePath,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ListAreas handles GET /v1/events/:id/areas: the event's seating areas
// with availability and converted prices.
func (h *CatalogHandler) ListAreas(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	areas, err := h.Store.AreasByEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]areaResp, 0, len(areas))
	for _, a := range areas {
		out = append(out, areaResp{
			ID:          a.ID,
			Name:        a.Name,
			PriceINR:    a.PriceINR.StringFixed(2),
			PriceUSD:    a.PriceINR.Mul(h.RateINRUSD).Round(2).StringFixed(2),
			TicketsLeft: a.TicketsLeft(),
			SoldOut:     a.SoldOut(),
		})
	}
	return c.JSON(http.StatusOK, out)
}
