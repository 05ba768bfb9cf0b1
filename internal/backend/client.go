package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joshua-takyi/tourbay/internal/models"
)

// Client talks to the remote tourism backend. Every call carries the
// caller's ctx and a bounded timeout on the underlying http.Client; there
// are no automatic retries — failed submissions need an explicit user
// retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

var _ models.TourismRepo = (*Client)(nil)

// errorPayload is the backend's 4xx/5xx body shape; message naming varies.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func (p errorPayload) text() string {
	for _, s := range []string{p.Message, p.Error, p.Detail} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode >= 400 {
		var payload errorPayload
		_ = json.Unmarshal(data, &payload)
		c.logger.Warn("backend rejected request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: payload.text()}
	}

	return data, nil
}

// listPayload covers the envelope shapes list endpoints use. Exactly one
// field is populated per endpoint; items() picks whichever arrived.
type listPayload struct {
	Data            []map[string]interface{} `json:"data"`
	Recommendations []map[string]interface{} `json:"recommendations"`
	TrendingSpots   []map[string]interface{} `json:"trending_spots"`
	Spots           []map[string]interface{} `json:"spots"`
	Packages        []map[string]interface{} `json:"packages"`
	Bookings        []map[string]interface{} `json:"bookings"`
}

func (p *listPayload) items() []map[string]interface{} {
	for _, candidate := range [][]map[string]interface{}{
		p.Data, p.Recommendations, p.TrendingSpots, p.Spots, p.Packages, p.Bookings,
	} {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}

// decodeList accepts either a bare JSON array or an enveloped list.
func decodeList(data []byte) ([]map[string]interface{}, error) {
	var bare []map[string]interface{}
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}
	var payload listPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %v", err)
	}
	return payload.items(), nil
}

// decodeObject accepts either a bare object or one wrapped under "data".
func decodeObject(data []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode object response: %v", err)
	}
	if inner, ok := raw["data"].(map[string]interface{}); ok {
		return inner, nil
	}
	return raw, nil
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *Client) GetPackage(ctx context.Context, id string) (*models.TourPackage, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/packages/"+url.PathEscape(id), "", nil, nil)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	pkg, ok := NormalizePackage(raw)
	if !ok {
		return nil, fmt.Errorf("backend returned a package without an id")
	}
	return pkg, nil
}

func (c *Client) ListPackages(ctx context.Context, limit int) ([]*models.TourPackage, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/packages", "", limitQuery(limit), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizePackages(items), nil
}

func (c *Client) GetSpot(ctx context.Context, id string) (*models.TouristSpot, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spots/"+url.PathEscape(id), "", nil, nil)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	spot, ok := NormalizeSpot(raw)
	if !ok {
		return nil, fmt.Errorf("backend returned a spot without an id")
	}
	return spot, nil
}

func (c *Client) ListSpots(ctx context.Context, category string, limit int) ([]*models.TouristSpot, error) {
	q := limitQuery(limit)
	if category != "" {
		q.Set("category", category)
	}
	data, err := c.do(ctx, http.MethodGet, "/api/spots", "", q, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeSpots(items), nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/bookings", token, nil, req)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	booking, ok := NormalizeBooking(raw)
	if !ok {
		return nil, fmt.Errorf("backend returned a booking without an id")
	}
	return booking, nil
}

func (c *Client) ListUserBookings(ctx context.Context, token string) ([]*models.Booking, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/bookings/my", token, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeBookings(items), nil
}

func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/bookings/"+url.PathEscape(bookingID)+"/cancel", token, nil, nil)
	return err
}

func (c *Client) SubmitRating(ctx context.Context, token string, req *models.RatingRequest) (*models.Rating, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/ratings", token, nil, req)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	rating := &models.Rating{
		ID:            rawString(raw, "id", "_id"),
		TourPackageID: req.TourPackageID,
		BookingID:     req.BookingID,
		TouristID:     req.TouristID,
		Value:         req.Rating,
	}
	if req.Review != nil {
		rating.Review = *req.Review
	}
	return rating, nil
}

func (c *Client) PersonalizedSpots(ctx context.Context, token string, limit int) ([]*models.TouristSpot, error) {
	q := limitQuery(limit)
	q.Set("use_ai", "true")
	data, err := c.do(ctx, http.MethodGet, "/api/recommendations/spots", token, q, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeSpots(items), nil
}

func (c *Client) PersonalizedPackages(ctx context.Context, token string, limit int) ([]*models.TourPackage, error) {
	q := limitQuery(limit)
	q.Set("use_ai", "true")
	data, err := c.do(ctx, http.MethodGet, "/api/recommendations/packages", token, q, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizePackages(items), nil
}

func (c *Client) TrendingSpots(ctx context.Context, limit int) ([]*models.TouristSpot, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spots/trending", "", limitQuery(limit), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeSpots(items), nil
}

func (c *Client) SimilarSpots(ctx context.Context, spotID string, limit int) ([]*models.TouristSpot, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spots/"+url.PathEscape(spotID)+"/similar", "", limitQuery(limit), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeSpots(items), nil
}

func (c *Client) CompanyAnalytics(ctx context.Context, token string, days int) (*models.CompanyAnalytics, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	data, err := c.do(ctx, http.MethodGet, "/api/analytics/company", token, q, nil)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	analytics := NormalizeAnalytics(raw)
	analytics.PeriodDays = days
	return analytics, nil
}

func (c *Client) ListCompanyBookings(ctx context.Context, token string) ([]*models.Booking, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/bookings/company", token, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	return NormalizeBookings(items), nil
}
