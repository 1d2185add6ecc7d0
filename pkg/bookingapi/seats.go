package bookingapi

import (
	"context"
	"fmt"

	"github.com/cinetick/cinetick/pkg/apiclient"
)

// SeatMap returns the seating layout and current seat statuses for a
// schedule. Statuses are a snapshot; a seat can be taken between this call
// and LockSeats.
func (c *Client) SeatMap(ctx context.Context, scheduleID int64) (SeatMap, error) {
	return apiclient.Get[SeatMap](ctx, c.api, fmt.Sprintf("/schedules/%d/seats", scheduleID))
}
