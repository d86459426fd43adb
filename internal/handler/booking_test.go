package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/f1-ticket-booking/internal/booking"
	"github.com/iliyamo/f1-ticket-booking/internal/catalog"
	"github.com/iliyamo/f1-ticket-booking/internal/queue"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// bookingFixture is a memory store with one event (area ID 1, price
// 100,000, capacity 10), a funded account and an engine with an identity
// conversion rate.
type bookingFixture struct {
	handler   *BookingHandler
	store     *store.Memory
	accountID uint64
}

func newBookingFixture(t *testing.T, balance int64) *bookingFixture {
	t.Helper()
	mem := store.NewMemory([]catalog.Event{{
		Name: "Test Grand Prix", Country: "Testland", RaceDate: "Jan 01-03", ImagePath: "tracks/test.jpg",
		Areas: []catalog.Area{{Name: "Main Grandstand", PriceINR: 100000, Capacity: 10}},
	}})
	acct, err := mem.CreateAccount(context.Background(), "Fan", "fan@example.com", "hash",
		decimal.NewFromInt(balance))
	require.NoError(t, err)
	eng := booking.NewEngine(mem, decimal.NewFromInt(1), 3)
	return &bookingFixture{
		handler:   NewBookingHandler(mem, eng),
		store:     mem,
		accountID: acct.ID,
	}
}

func (f *bookingFixture) book(t *testing.T, areaID, body string) (int, string) {
	t.Helper()
	c, rec := jsonReq(http.MethodPost, "/v1/areas/"+areaID+"/book", body)
	c.SetParamNames("id")
	c.SetParamValues(areaID)
	c.Set("user_id", float64(f.accountID))
	require.NoError(t, f.handler.Book(c))
	return rec.Code, rec.Body.String()
}

func TestBookSuccess(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	code, body := f.book(t, "1", `{"quantity":3}`)
	require.Equal(t, http.StatusCreated, code)

	var resp struct {
		ID        string `json:"id"`
		EventName string `json:"event_name"`
		AreaName  string `json:"area_name"`
		Quantity  int    `json:"quantity"`
		TotalUSD  string `json:"total_usd"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Contains(t, resp.ID, "F1TKT-")
	assert.Equal(t, "Test Grand Prix", resp.EventName)
	assert.Equal(t, "Main Grandstand", resp.AreaName)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, "300000.00", resp.TotalUSD)
}

func TestBookPublishesEvent(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	var published []queue.TicketIssuedEvent
	f.handler.Publish = func(ctx context.Context, ev queue.TicketIssuedEvent) error {
		published = append(published, ev)
		return nil
	}

	code, _ := f.book(t, "1", `{"quantity":2}`)
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, published, 1)
	assert.Equal(t, f.accountID, published[0].AccountID)
	assert.Equal(t, 2, published[0].Quantity)
}

func TestBookPublishFailureDoesNotFailBooking(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	f.handler.Publish = func(ctx context.Context, ev queue.TicketIssuedEvent) error {
		return assert.AnError
	}
	code, _ := f.book(t, "1", `{"quantity":1}`)
	assert.Equal(t, http.StatusCreated, code)
}

func TestBookInvalidQuantityStatus(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	code, _ := f.book(t, "1", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestBookSoldOutStatus(t *testing.T) {
	f := newBookingFixture(t, 10000000)
	code, body := f.book(t, "1", `{"quantity":11}`)
	require.Equal(t, http.StatusConflict, code)

	var resp struct {
		TicketsLeft int `json:"tickets_left"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 10, resp.TicketsLeft)
}

func TestBookInsufficientFundsStatus(t *testing.T) {
	f := newBookingFixture(t, 100) // ticket costs 100,000
	code, _ := f.book(t, "1", `{"quantity":1}`)
	assert.Equal(t, http.StatusPaymentRequired, code)
}

func TestBookUnknownAreaStatus(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	code, _ := f.book(t, "99", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBookUnauthenticated(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	c, rec := jsonReq(http.MethodPost, "/v1/areas/1/book", `{"quantity":1}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, f.handler.Book(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMyTickets(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	code, _ := f.book(t, "1", `{"quantity":2}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = f.book(t, "1", `{"quantity":1}`)
	require.Equal(t, http.StatusCreated, code)

	c, rec := jsonReq(http.MethodGet, "/v1/tickets", "")
	c.Set("user_id", float64(f.accountID))
	require.NoError(t, f.handler.MyTickets(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Quantity int `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 2, resp[0].Quantity)
	assert.Equal(t, 1, resp[1].Quantity)
}

func TestMyTicketsEmpty(t *testing.T) {
	f := newBookingFixture(t, 1000000)
	c, rec := jsonReq(http.MethodGet, "/v1/tickets", "")
	c.Set("user_id", float64(f.accountID))
	require.NoError(t, f.handler.MyTickets(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
