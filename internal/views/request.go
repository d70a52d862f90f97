package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// RequestView is the waste-report page: submit a report and list the
// caller's reports (or, for volunteers, the reports in their pincode).
type RequestView struct {
	client *apiclient.Client
	store  *session.Store

	Loading    bool
	Submitting bool
	Redirect   Route
	Err        string
	SubmitErr  string

	Requests []Request
}

func NewRequestView(client *apiclient.Client, store *session.Store) *RequestView {
	return &RequestView{client: client, store: store}
}

// Load fetches the request list; the endpoint is selected by role.
func (v *RequestView) Load(ctx context.Context) {
	sess, ok := v.store.Get()
	if !ok {
		v.Redirect = RouteLogin
		return
	}

	path := "/api/user_requests"
	if sess.User.Role == "volunteer" {
		path = "/api/volunteer_requests"
	}

	v.Loading = true
	requests, err := fetchSlice[Request](ctx, v.client, path, nil)
	if err != nil {
		v.Err = errText(err, "Failed to load requests")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
	} else {
		v.Err = ""
		v.Requests = requests
	}
	v.Loading = false
}

// RequestForm carries the raw form field values.
type RequestForm struct {
	Pincode     string
	Latitude    string
	Longitude   string
	Description string
	Address     string
	Link        string
}

// coerceCoord parses a numeric form field. Malformed input silently becomes
// 0.0 rather than rejecting the submission; this is explicit policy, kept
// from the original behavior.
func coerceCoord(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return f
}

type submitRequestPayload struct {
	Email       string  `json:"email"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Link        string  `json:"link"`
}

// BuildPayload shapes the wire payload from the form, applying the numeric
// coercion policy. Exposed separately so the shaping is testable.
func (v *RequestView) BuildPayload(form RequestForm) submitRequestPayload {
	sess, _ := v.store.Get()
	return submitRequestPayload{
		Email:       sess.User.Email,
		Pincode:     strings.TrimSpace(form.Pincode),
		Latitude:    coerceCoord(form.Latitude),
		Longitude:   coerceCoord(form.Longitude),
		Description: form.Description,
		Address:     form.Address,
		Link:        form.Link,
	}
}

type submitRequestResponse struct {
	ID      uint    `json:"id"`
	Request Request `json:"request"`
}

// Submit sends the report and appends it to the local list on success.
func (v *RequestView) Submit(ctx context.Context, form RequestForm) error {
	v.Submitting = true
	defer func() { v.Submitting = false }()

	payload := v.BuildPayload(form)

	var resp submitRequestResponse
	if err := v.client.Post(ctx, "/api/request_register", payload, &resp); err != nil {
		v.SubmitErr = errText(err, "Failed to submit request")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}

	v.SubmitErr = ""
	v.Requests = append(v.Requests, resp.Request)
	return nil
}
