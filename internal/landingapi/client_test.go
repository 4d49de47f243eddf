package landingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/landing-page/trips/7":
			_, _ = w.Write([]byte(`{"data":{"id":7,"name":"Komodo","type":"Private Trip"}}`))
		case "/api/landing-page/trips/8":
			_, _ = w.Write([]byte(`{"data":null}`))
		case "/api/landing-page/trips/9":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)

	trip, err := c.GetTrip(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), trip.ID.ID())
	assert.Equal(t, "Private Trip", trip.Type.String())

	_, err = c.GetTrip(context.Background(), 8)
	assert.True(t, domain.IsNotFound(err), "null data is not found, got %v", err)

	_, err = c.GetTrip(context.Background(), 9)
	assert.True(t, domain.IsNotFound(err))

	_, err = c.GetTrip(context.Background(), 10)
	assert.True(t, domain.IsUpstream(err))
}

func TestClient_ListBoatsAndHotels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/landing-page/boats":
			_, _ = w.Write([]byte(`{"data":[{"id":1,"boat_name":"Pinisi","status":"Aktif","cabin":[]}]}`))
		case "/api/landing-page/hotels":
			_, _ = w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	boats, err := c.ListBoats(context.Background())
	require.NoError(t, err)
	require.Len(t, boats, 1)
	assert.Equal(t, "Pinisi", boats[0].BoatName.String())

	hotels, err := c.ListHotels(context.Background())
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestClient_CreateBooking(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/landing-page/bookings", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"555"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	id, err := c.CreateBooking(context.Background(), BookingPayload{
		TripID:    7,
		TotalPax:  2,
		Status:    BookingStatusPending,
		StartDate: "2026-02-02",
		EndDate:   "2026-02-04",
		BoatIDs:   []int64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(555), id)
	assert.Equal(t, "Pending", got["status"])
	assert.Nil(t, got["hotel_occupancy_id"])
	assert.Equal(t, "2026-02-04", got["end_date"])
}

func TestClient_CreateBookingRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).CreateBooking(context.Background(), BookingPayload{})
	require.Error(t, err)
	var up domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusUnprocessableEntity, up.StatusCode)
}
