package views

import (
	"context"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// CampRegisterView backs the camp creation page. The page is opened for a
// specific waste report; the report is resolved first so the form can show
// its location, then the camp is created against it.
type CampRegisterView struct {
	client *apiclient.Client
	store  *session.Store

	Loading    bool
	Submitting bool
	Redirect   Route
	Err        string

	Request Request
}

func NewCampRegisterView(client *apiclient.Client, store *session.Store) *CampRegisterView {
	return &CampRegisterView{client: client, store: store}
}

// Load resolves the report the camp will be registered for.
func (v *CampRegisterView) Load(ctx context.Context, requestID uint) {
	if _, ok := v.store.Get(); !ok {
		v.Redirect = RouteLogin
		return
	}
	v.Loading = true
	var req Request
	if err := v.client.Get(ctx, "/api/request/"+uitoa(requestID), &req); err != nil {
		v.Err = errText(err, "Failed to load request")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
	} else {
		v.Err = ""
		v.Request = req
	}
	v.Loading = false
}

// CampForm carries the camp creation fields.
type CampForm struct {
	Name          string `json:"campName"`
	Date          string `json:"dateOfCamp"`
	Timing        string `json:"timeOfCamp"`
	NumVolunteers int    `json:"numberOfVolunteers"`
	Description   string `json:"description"`
}

type campRegisterPayload struct {
	RequestID     uint   `json:"requestId"`
	Name          string `json:"campName"`
	Date          string `json:"dateOfCamp"`
	Timing        string `json:"timeOfCamp"`
	NumVolunteers int    `json:"numberOfVolunteers"`
	Description   string `json:"description"`
}

// Submit registers the camp against the loaded request and routes back to
// the volunteer dashboard on success.
func (v *CampRegisterView) Submit(ctx context.Context, form CampForm) (Route, error) {
	v.Submitting = true
	defer func() { v.Submitting = false }()

	payload := campRegisterPayload{
		RequestID:     v.Request.ID,
		Name:          form.Name,
		Date:          form.Date,
		Timing:        form.Timing,
		NumVolunteers: form.NumVolunteers,
		Description:   form.Description,
	}
	var resp struct {
		Campaign Camp `json:"campaign"`
	}
	if err := v.client.Post(ctx, "/api/camp_register", payload, &resp); err != nil {
		v.Err = errText(err, "Failed to register camp")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
			return RouteLogin, err
		}
		return "", err
	}
	v.Err = ""
	return RouteVolunteer, nil
}
