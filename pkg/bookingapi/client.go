package bookingapi

import "github.com/cinetick/cinetick/pkg/apiclient"

// Client exposes the booking endpoints. All methods go through the shared
// request pipeline and inherit its token injection and unauthorized
// handling.
type Client struct {
	api *apiclient.Client
}

// New creates a booking API client over the given pipeline.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}
