package bookingapi

import (
	"context"
	"fmt"

	"github.com/cinetick/cinetick/pkg/apiclient"
)

// LockSeats reserves the given seats and creates a pending order. The
// backend rejects the whole request with a conflict when any seat is no
// longer available; check with errors.Is against apiclient.ErrConflict.
func (c *Client) LockSeats(ctx context.Context, req CreateOrder) (OrderLock, error) {
	return apiclient.Post[OrderLock](ctx, c.api, "/orders", req)
}

// PayOrder marks a pending order as paid. Fails if the order expired or is
// already finalized.
func (c *Client) PayOrder(ctx context.Context, orderID int64) error {
	_, err := apiclient.Put[struct{}](ctx, c.api, fmt.Sprintf("/orders/%d/pay", orderID), nil)
	return err
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	_, err := apiclient.Put[struct{}](ctx, c.api, fmt.Sprintf("/orders/%d/cancel", orderID), nil)
	return err
}

// MyOrders returns the caller's order history.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	return apiclient.Get[[]Order](ctx, c.api, "/orders")
}
