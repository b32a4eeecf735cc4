// Package services contains the application services of the Logix terminal
// client: authentication, the shipment workflow, reference data access and
// user administration. Every service talks to the backend through the
// request pipeline only.
package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

// Doer is the slice of the api.Client the services depend on. Tests swap in
// lightweight fakes.
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// ErrAcceptInFlight is returned when an accept for the same shipment has
// not finished yet; duplicate submissions are rejected client-side.
var ErrAcceptInFlight = errors.New("accept already in flight")

// ListQuery carries the common pagination parameters understood by every
// list endpoint.
type ListQuery struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
}

// values renders the query, filling blanks from the given defaults.
func (q ListQuery) values(defaults ListQuery) url.Values {
	if q.Page <= 0 {
		q.Page = defaults.Page
	}
	if q.Limit <= 0 {
		q.Limit = defaults.Limit
	}
	if q.SortBy == "" {
		q.SortBy = defaults.SortBy
	}
	if q.Order == "" {
		q.Order = defaults.Order
	}

	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sortBy", q.SortBy)
	v.Set("order", q.Order)
	return v
}
