// Package bookingapi provides typed access to the movie-ticket booking
// backend. Each method wraps exactly one endpoint and delegates transport,
// token injection and unauthorized handling to the apiclient pipeline.
//
// The client performs no validation beyond type shape and never computes
// seat or order state locally: seat availability, order expiry and payment
// transitions are enforced by the backend, and the structs here are
// snapshots that may go stale. Views are expected to re-fetch rather than
// reconcile.
//
//	api := bookingapi.New(pipeline)
//
//	user, err := api.Login(ctx, bookingapi.Credentials{Username: "alice", Password: "secret"})
//	cinemas, err := api.Cinemas(ctx)
//	lock, err := api.LockSeats(ctx, bookingapi.CreateOrder{ScheduleID: 7, SeatIDs: []int64{1, 2}})
package bookingapi
