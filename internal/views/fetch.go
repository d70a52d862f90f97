package views

import (
	"context"
	"errors"
	"strconv"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
)

// uitoa formats an ID for a path segment.
func uitoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// fetchSlice loads a list endpoint and applies an optional client-side
// predicate. Every view's list fetches go through here so the
// loading/error/filter pattern lives in one place.
func fetchSlice[T any](ctx context.Context, c *apiclient.Client, path string, keep func(T) bool) ([]T, error) {
	var all []T
	if err := c.Get(ctx, path, &all); err != nil {
		return nil, err
	}
	if keep == nil {
		return all, nil
	}
	out := make([]T, 0, len(all))
	for _, item := range all {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// errText maps an error to the inline message a view renders. Backend
// messages are shown verbatim; transport failures get the generic banner.
func errText(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, apiclient.ErrNetworkUnavailable) {
		return "Cannot connect to the server. Please try again."
	}
	var rf *apiclient.RequestFailed
	if errors.As(err, &rf) && rf.Message != "" {
		return rf.Message
	}
	return fallback
}

// sessionExpired reports whether err means the stored credential is invalid.
// The HTTP client has already cleared the store; the view's only job is to
// redirect to login.
func sessionExpired(err error) bool {
	var rf *apiclient.RequestFailed
	return errors.As(err, &rf) && rf.SessionExpired()
}
