package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/f1-ticket-booking/internal/catalog"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

func newCatalogHandler() *CatalogHandler {
	mem := store.NewMemory([]catalog.Event{
		{
			Name: "Monaco Grand Prix", Country: "Monaco", RaceDate: "May 23-25", ImagePath: "tracks/monaco.jpg",
			Areas: []catalog.Area{
				{Name: "Casino Square", PriceINR: 100000, Capacity: 40},
				{Name: "Rascasse", PriceINR: 60000, Capacity: 80},
			},
		},
	})
	return NewCatalogHandler(mem, decimal.RequireFromString("0.012"))
}

func TestListEvents(t *testing.T) {
	h := newCatalogHandler()
	c, rec := jsonReq(http.MethodGet, "/v1/events", "")
	require.NoError(t, h.ListEvents(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		ID       uint64 `json:"id"`
		Name     string `json:"name"`
		Country  string `json:"country"`
		RaceDate string `json:"race_date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Monaco Grand Prix", resp[0].Name)
	assert.Equal(t, "Monaco", resp[0].Country)
}

func TestListAreas(t *testing.T) {
	h := newCatalogHandler()
	c, rec := jsonReq(http.MethodGet, "/v1/events/1/areas", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.ListAreas(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Name        string `json:"name"`
		PriceINR    string `json:"price_inr"`
		PriceUSD    string `json:"price_usd"`
		TicketsLeft int    `json:"tickets_left"`
		SoldOut     bool   `json:"sold_out"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Casino Square", resp[0].Name)
	assert.Equal(t, "100000.00", resp[0].PriceINR)
	assert.Equal(t, "1200.00", resp[0].PriceUSD)
	assert.Equal(t, 40, resp[0].TicketsLeft)
	assert.False(t, resp[0].SoldOut)
	assert.Equal(t, "720.00", resp[1].PriceUSD)
}

func TestListAreasUnknownEvent(t *testing.T) {
	h := newCatalogHandler()
	c, rec := jsonReq(http.MethodGet, "/v1/events/9/areas", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.ListAreas(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAreasBadID(t *testing.T) {
	h := newCatalogHandler()
	c, rec := jsonReq(http.MethodGet, "/v1/events/abc/areas", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.ListAreas(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
