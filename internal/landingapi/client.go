package landingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tripbooking/internal/domain"
)

const maxBodyBytes = 8 << 20

// Client talks to the landing-page REST API. Calls are single-shot: no retries.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// GetTrip fetches GET /api/landing-page/trips/{id}.
func (c *Client) GetTrip(ctx context.Context, id int64) (RawTrip, error) {
	var out RawTrip
	found, err := c.getData(ctx, "get_trip", "/api/landing-page/trips/"+strconv.FormatInt(id, 10), &out)
	if err != nil {
		return out, err
	}
	if !found {
		return out, domain.NotFoundError{Resource: "trip"}
	}
	return out, nil
}

// ListBoats fetches GET /api/landing-page/boats.
func (c *Client) ListBoats(ctx context.Context) ([]RawBoat, error) {
	var out []RawBoat
	if _, err := c.getData(ctx, "list_boats", "/api/landing-page/boats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHotels fetches GET /api/landing-page/hotels.
func (c *Client) ListHotels(ctx context.Context) ([]RawHotel, error) {
	var out []RawHotel
	if _, err := c.getData(ctx, "list_hotels", "/api/landing-page/hotels", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking posts the booking and returns the id from {"data":{"id":...}}.
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (int64, error) {
	const op = "create_booking"
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal encode payload booking", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/landing-page/bookings", bytes.NewReader(body))
	if err != nil {
		return 0, domain.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var created struct {
		ID Stringish `json:"id"`
	}
	found, err := c.do(req, op, &created)
	if err != nil {
		return 0, err
	}
	id := created.ID.ID()
	if !found || id <= 0 {
		return 0, domain.UpstreamError{Op: op, Err: fmt.Errorf("response tanpa id booking")}
	}
	return id, nil
}

func (c *Client) getData(ctx context.Context, op, path string, dst any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return false, domain.UpstreamError{Op: op, Err: err}
	}
	return c.do(req, op, dst)
}

// do executes req and decodes the envelope's data into dst. It reports false when data
// is null or missing.
func (c *Client) do(req *http.Request, op string, dst any) (bool, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return false, domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode == http.StatusNotFound {
		return false, domain.NotFoundError{Resource: strings.TrimPrefix(op, "get_")}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, domain.UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || string(data) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return true, nil
}
