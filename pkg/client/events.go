package client

import (
	"context"
	"net/url"
	"strconv"
)

// EventService handles alert event API calls
type EventService struct {
	client *Client
}

// EventListOptions contains options for listing alert events
type EventListOptions struct {
	Limit int
}

// List retrieves recent alert events for the caller's tenant, newest first
func (s *EventService) List(ctx context.Context, opts *EventListOptions) ([]AlertEvent, error) {
	path := "/api/events"
	if opts != nil && opts.Limit > 0 {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(opts.Limit))
		path += "?" + query.Encode()
	}

	var events []AlertEvent
	if err := s.client.doRequest(ctx, "GET", path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
