package views

import (
	"context"
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// authResponse is the shape of login/register success payloads.
type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

// routeForRole picks the landing page after login/register.
func routeForRole(role string) Route {
	switch role {
	case "admin":
		return RouteAdmin
	case "volunteer":
		return RouteVolunteer
	}
	return RouteHome
}

// LoginView is the login page controller.
type LoginView struct {
	client *apiclient.Client
	store  *session.Store

	Submitting bool
	Err        string
}

func NewLoginView(client *apiclient.Client, store *session.Store) *LoginView {
	return &LoginView{client: client, store: store}
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Submit authenticates and persists the session. Token and user are stored
// together before any navigation happens.
func (v *LoginView) Submit(ctx context.Context, form LoginForm) (Route, error) {
	v.Submitting = true
	defer func() { v.Submitting = false }()

	var resp authResponse
	if err := v.client.Call(ctx, http.MethodPost, "/api/login", form, &resp); err != nil {
		v.Err = errText(err, "Login failed")
		return RouteLogin, err
	}

	if err := v.store.Set(resp.AccessToken, resp.User); err != nil {
		v.Err = "Failed to save session"
		return RouteLogin, err
	}

	v.Err = ""
	return routeForRole(resp.User.Role), nil
}

// RegisterView is the registration page controller.
type RegisterView struct {
	client *apiclient.Client
	store  *session.Store

	Submitting bool
	Err        string
}

func NewRegisterView(client *apiclient.Client, store *session.Store) *RegisterView {
	return &RegisterView{client: client, store: store}
}

type RegisterForm struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Address   string  `json:"address"`
	Pincode   string  `json:"pincode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Role      string  `json:"role"`
}

// Submit registers the account and logs straight in.
func (v *RegisterView) Submit(ctx context.Context, form RegisterForm) (Route, error) {
	v.Submitting = true
	defer func() { v.Submitting = false }()

	var resp authResponse
	if err := v.client.Call(ctx, http.MethodPost, "/api/register", form, &resp); err != nil {
		v.Err = errText(err, "Registration failed")
		return RouteRegister, err
	}

	if err := v.store.Set(resp.AccessToken, resp.User); err != nil {
		v.Err = "Failed to save session"
		return RouteRegister, err
	}

	v.Err = ""
	return routeForRole(resp.User.Role), nil
}
