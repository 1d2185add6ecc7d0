package bookingapi

import (
	"context"
	"strconv"

	"github.com/cinetick/cinetick/pkg/apiclient"
)

// Cinemas lists all cinemas.
func (c *Client) Cinemas(ctx context.Context) ([]Cinema, error) {
	return apiclient.Get[[]Cinema](ctx, c.api, "/cinemas")
}

// Schedules lists the schedules of one cinema. date optionally filters to a
// single day in "2006-01-02" form; pass "" for all upcoming schedules.
func (c *Client) Schedules(ctx context.Context, cinemaID int64, date string) ([]Schedule, error) {
	return apiclient.Get[[]Schedule](ctx, c.api, "/schedules",
		apiclient.WithQuery("cinemaId", strconv.FormatInt(cinemaID, 10)),
		apiclient.WithQuery("date", date),
	)
}
