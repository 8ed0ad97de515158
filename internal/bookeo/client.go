package bookeo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

// Client talks to the Bookeo REST API with static application credentials.
// Both credentials are mandatory: a client without them cannot do anything,
// so construction fails instead of deferring the error to the first call.
type Client struct {
	appID      string
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(appID, secretKey, baseURL string) (*Client, error) {
	if appID == "" || secretKey == "" {
		return nil, errors.New("bookeo: app id and secret key are required")
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		appID:     appID,
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// ===============================
// Scheduler implementation
// ===============================

func (c *Client) ListServices(ctx context.Context) ([]booking.Service, error) {
	var out listResponse[product]
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}

	services := make([]booking.Service, 0, len(out.Data))
	for _, p := range out.Data {
		services = append(services, booking.Service{
			ID:          p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			DurationMin: p.DurationMinutes,
			Price:       p.Price.Amount,
			Currency:    p.Price.Currency,
			Category:    p.Category,
		})
	}

	return services, nil
}

func (c *Client) ListBookings(
	ctx context.Context,
	serviceID string,
	start time.Time,
	end time.Time,
) ([]booking.BookedInterval, error) {

	q := url.Values{}
	q.Set("productId", serviceID)
	q.Set("startTime", start.Format(time.RFC3339))
	q.Set("endTime", end.Format(time.RFC3339))

	var out listResponse[bookingRecord]
	if err := c.do(ctx, http.MethodGet, "/bookings", q, nil, &out); err != nil {
		return nil, err
	}

	intervals := make([]booking.BookedInterval, 0, len(out.Data))
	for _, b := range out.Data {
		intervals = append(intervals, booking.BookedInterval{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return intervals, nil
}

func (c *Client) CreateBooking(
	ctx context.Context,
	sub booking.Submission,
) (*booking.SubmittedBooking, error) {

	cust, err := c.getOrCreateCustomer(ctx, sub.Customer)
	if err != nil {
		return nil, err
	}

	req := createBookingRequest{
		ProductID:  sub.Service.ID,
		StartTime:  sub.Start,
		EndTime:    sub.End,
		CustomerID: cust.ID,
		ParticipantDetails: []participantDetail{
			{
				PersonID: 1,
				Details: map[string]string{
					"firstName": sub.Customer.FirstName,
					"lastName":  sub.Customer.LastName,
				},
			},
		},
	}

	var out bookingRecord
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}

	confirmedAt := out.CreationTime
	if confirmedAt.IsZero() {
		confirmedAt = time.Now()
	}

	return &booking.SubmittedBooking{
		ID:          out.BookingNumber,
		Service:     sub.Service,
		Start:       out.StartTime,
		End:         out.EndTime,
		Customer:    sub.Customer,
		ConfirmedAt: confirmedAt,
	}, nil
}

func (c *Client) CancelBooking(
	ctx context.Context,
	bookingRef string,
	reason string,
) error {

	path := fmt.Sprintf("/bookings/%s", url.PathEscape(bookingRef))
	return c.do(ctx, http.MethodDelete, path, nil, cancelBookingRequest{Reason: reason}, nil)
}

// ===============================
// Customers
// ===============================

// getOrCreateCustomer resolves the provider-side customer by email, creating
// one when none matches.
func (c *Client) getOrCreateCustomer(
	ctx context.Context,
	ident booking.Identity,
) (*customer, error) {

	q := url.Values{}
	q.Set("searchField", "emailAddress")
	q.Set("searchText", ident.Email)

	var existing listResponse[customer]
	if err := c.do(ctx, http.MethodGet, "/customers", q, nil, &existing); err != nil {
		return nil, err
	}

	for _, cust := range existing.Data {
		if strings.EqualFold(cust.EmailAddress, ident.Email) {
			return &cust, nil
		}
	}

	req := customer{
		FirstName:    ident.FirstName,
		LastName:     ident.LastName,
		EmailAddress: ident.Email,
		PhoneNumber:  ident.Phone,
	}

	var created customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// ===============================
// Transport
// ===============================

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) error {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set(headerAppID, c.appID)
	req.Header.Set(headerSecretKey, c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// timeouts, DNS, refused connections: all network_error for callers
		return httperr.ErrBusiness(httperr.CodeNetworkError)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) mapStatus(resp *http.Response) error {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode == http.StatusConflict:
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	case resp.StatusCode >= 500:
		return httperr.ErrBusiness(httperr.CodeNetworkError)
	default:
		return httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
}

// Compile-time check
var _ booking.Scheduler = (*Client)(nil)
