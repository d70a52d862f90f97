package views

import (
	"context"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// CampPageView shows a single camp with join/leave actions.
type CampPageView struct {
	client *apiclient.Client
	store  *session.Store

	Loading  bool
	Redirect Route
	Err      string

	Camp Camp
}

func NewCampPageView(client *apiclient.Client, store *session.Store) *CampPageView {
	return &CampPageView{client: client, store: store}
}

func (v *CampPageView) Load(ctx context.Context, campID uint) {
	if _, ok := v.store.Get(); !ok {
		v.Redirect = RouteLogin
		return
	}
	v.Loading = true
	var camp Camp
	if err := v.client.Get(ctx, "/api/managecamp?id="+uitoa(campID), &camp); err != nil {
		v.Err = errText(err, "Failed to load camp")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
	} else {
		v.Err = ""
		v.Camp = camp
	}
	v.Loading = false
}

// Participate joins the caller to the camp and refreshes the local counts
// from the response.
func (v *CampPageView) Participate(ctx context.Context) error {
	var resp struct {
		ParticipationCount int  `json:"participationCount"`
		SpotsLeft          int  `json:"spotsLeft"`
		CampDetails        Camp `json:"campDetails"`
	}
	if err := v.client.Post(ctx, "/api/camp_participate/"+uitoa(v.Camp.ID), nil, &resp); err != nil {
		v.Err = errText(err, "Failed to join camp")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.Err = ""
	v.Camp = resp.CampDetails
	v.Camp.IsParticipating = true
	v.Camp.ParticipationCount = resp.ParticipationCount
	v.Camp.SpotsLeft = resp.SpotsLeft
	return nil
}

// Leave withdraws the caller from the camp.
func (v *CampPageView) Leave(ctx context.Context) error {
	var resp struct {
		Message string `json:"message"`
	}
	if err := v.client.Post(ctx, "/api/leave-campaign/"+uitoa(v.Camp.ID), nil, &resp); err != nil {
		v.Err = errText(err, "Failed to leave camp")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.Err = ""
	v.Camp.IsParticipating = false
	if v.Camp.ParticipationCount > 0 {
		v.Camp.ParticipationCount--
		v.Camp.SpotsLeft++
	}
	return nil
}
