package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cinetick/cinetick/pkg/apiclient"
	"github.com/cinetick/cinetick/pkg/bookingapi"
	"github.com/cinetick/cinetick/pkg/navigator"
	"github.com/cinetick/cinetick/pkg/session"
)

const timeLayout = "2006-01-02 15:04"

// loginScreen prompts for credentials and stores the returned identity.
func (a *app) loginScreen(ctx context.Context, _ navigator.Params) (string, error) {
	a.printf("\n== Log in ==\n")

	username, ok := a.prompt("username")
	if !ok {
		return "", nil
	}
	password, ok := a.prompt("password")
	if !ok {
		return "", nil
	}

	user, err := a.api.Login(ctx, bookingapi.Credentials{Username: username, Password: password})
	if err != nil {
		a.toasts.Error(loginFailureMessage(err))
		return "/login", nil
	}

	if err := a.store.SetUserInfo(session.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Token:    user.Token,
	}); err != nil {
		return "", err
	}

	a.toasts.Success("welcome, " + user.Name)
	return "/cinemas", nil
}

func loginFailureMessage(err error) string {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return "invalid username or password"
	}
	return "login failed: " + err.Error()
}

// cinemaScreen lists cinemas, then the selected cinema's schedules.
func (a *app) cinemaScreen(ctx context.Context, _ navigator.Params) (string, error) {
	cinemas, err := a.api.Cinemas(ctx)
	if err != nil {
		a.toasts.Error("could not load cinemas: " + err.Error())
		input, ok := a.prompt("press enter to retry, q to quit")
		if !ok || input == "q" {
			return "", nil
		}
		return "/cinemas", nil
	}

	a.printf("\n== Cinemas ==\n")
	for i, c := range cinemas {
		a.printf("%2d. %s — %s\n", i+1, c.Name, c.Location)
	}
	a.printf("Commands: <number> pick cinema, o my orders, l logout, q quit\n")

	input, ok := a.prompt("choice")
	if !ok {
		return "", nil
	}
	switch input {
	case "q":
		return "", nil
	case "o":
		return "/orders", nil
	case "l":
		if err := a.store.Logout(); err != nil {
			return "", err
		}
		a.toasts.Info("logged out")
		return "/login", nil
	}

	idx, ok := parseIndex(input, len(cinemas))
	if !ok {
		a.toasts.Warning("unknown choice")
		return "/cinemas", nil
	}

	return a.scheduleList(ctx, cinemas[idx])
}

// scheduleList shows one cinema's schedules with an optional date filter
// and returns the seat-selection path for the picked schedule.
func (a *app) scheduleList(ctx context.Context, cinema bookingapi.Cinema) (string, error) {
	date, ok := a.prompt("date filter (YYYY-MM-DD, empty for all)")
	if !ok {
		return "", nil
	}

	schedules, err := a.api.Schedules(ctx, cinema.ID, date)
	if err != nil {
		a.toasts.Error("could not load schedules: " + err.Error())
		return "/cinemas", nil
	}
	if len(schedules) == 0 {
		a.toasts.Info("no schedules for " + cinema.Name)
		return "/cinemas", nil
	}

	a.printf("\n== %s ==\n", cinema.Name)
	for i, s := range schedules {
		a.printf("%2d. %s  %s–%s  %s\n",
			i+1, s.MovieTitle,
			s.StartTime.Format(timeLayout), s.EndTime.Format("15:04"),
			s.HallName,
		)
	}

	input, ok := a.prompt("schedule (empty to go back)")
	if !ok {
		return "", nil
	}
	if input == "" {
		return "/cinemas", nil
	}
	idx, ok := parseIndex(input, len(schedules))
	if !ok {
		a.toasts.Warning("unknown choice")
		return "/cinemas", nil
	}

	return fmt.Sprintf("/schedules/%d/seats", schedules[idx].ID), nil
}

// seatScreen renders the seat map of one schedule and drives the lock-pay
// flow. Seat statuses are a snapshot; a conflicting lock re-fetches.
func (a *app) seatScreen(ctx context.Context, params navigator.Params) (string, error) {
	scheduleID, err := strconv.ParseInt(params["id"], 10, 64)
	if err != nil {
		a.toasts.Error("invalid schedule id")
		return "/cinemas", nil
	}

	seatMap, err := a.api.SeatMap(ctx, scheduleID)
	if err != nil {
		a.toasts.Error("could not load seats: " + err.Error())
		return "/cinemas", nil
	}

	a.printSeatMap(seatMap)

	input, ok := a.prompt("seat ids, comma separated (empty to go back)")
	if !ok {
		return "", nil
	}
	if input == "" {
		return "/cinemas", nil
	}
	seatIDs, err := parseSeatIDs(input)
	if err != nil {
		a.toasts.Warning(err.Error())
		return fmt.Sprintf("/schedules/%d/seats", scheduleID), nil
	}

	lock, err := a.api.LockSeats(ctx, bookingapi.CreateOrder{ScheduleID: scheduleID, SeatIDs: seatIDs})
	if err != nil {
		if errors.Is(err, apiclient.ErrConflict) {
			a.toasts.Error("a selected seat is no longer available")
			// Show the refreshed map so the stale snapshot is replaced.
			return fmt.Sprintf("/schedules/%d/seats", scheduleID), nil
		}
		a.toasts.Error("could not lock seats: " + err.Error())
		return "/cinemas", nil
	}

	a.toasts.Success(fmt.Sprintf("order %d created, pay before %s",
		lock.OrderID, lock.ExpiresAt.Format(timeLayout)))

	answer, ok := a.prompt("pay now? (y/n)")
	if !ok {
		return "", nil
	}
	if strings.EqualFold(answer, "y") {
		if err := a.api.PayOrder(ctx, lock.OrderID); err != nil {
			a.toasts.Error("payment failed: " + err.Error())
		} else {
			a.toasts.Success("order paid, enjoy the movie")
		}
	}
	return "/orders", nil
}

func (a *app) printSeatMap(seatMap bookingapi.SeatMap) {
	byPosition := make(map[[2]int]bookingapi.Seat, len(seatMap.Seats))
	for _, s := range seatMap.Seats {
		byPosition[[2]int{s.Row, s.Col}] = s
	}

	a.printf("\n== %s ==\n", seatMap.HallName)
	for row := 1; row <= seatMap.Rows; row++ {
		a.printf("%2d  ", row)
		for col := 1; col <= seatMap.Cols; col++ {
			seat, ok := byPosition[[2]int{row, col}]
			switch {
			case !ok:
				a.printf("    ")
			case seat.Status == bookingapi.SeatSold:
				a.printf("  x ")
			case seat.Status == bookingapi.SeatLocked:
				a.printf("  * ")
			case seat.Type == bookingapi.SeatVIP:
				a.printf("%3dV", seat.ID)
			default:
				a.printf("%3d ", seat.ID)
			}
		}
		a.printf("\n")
	}
	a.printf("free seats show their id (V = VIP), * locked, x sold\n")
}

func parseSeatIDs(input string) ([]int64, error) {
	parts := strings.Split(input, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seat id %q", strings.TrimSpace(part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ordersScreen lists the caller's orders and pays or cancels pending ones.
func (a *app) ordersScreen(ctx context.Context, _ navigator.Params) (string, error) {
	orders, err := a.api.MyOrders(ctx)
	if err != nil {
		a.toasts.Error("could not load orders: " + err.Error())
		return "/cinemas", nil
	}

	a.printf("\n== My orders ==\n")
	if len(orders) == 0 {
		a.printf("no orders yet\n")
	}
	for i, o := range orders {
		line := fmt.Sprintf("%2d. #%d %s  %s  %s  seats %s  %s",
			i+1, o.ID, o.MovieTitle, o.HallName,
			o.StartTime.Format(timeLayout),
			strings.Join(o.SeatNumbers, ","), o.Status,
		)
		if o.TotalAmount != nil {
			line += fmt.Sprintf("  %.2f", *o.TotalAmount)
		}
		if o.Pending() && o.ExpiresAt != nil {
			line += "  expires " + o.ExpiresAt.Format("15:04:05")
		}
		a.printf("%s\n", line)
	}
	a.printf("Commands: p <n> pay, c <n> cancel, b back, q quit\n")

	input, ok := a.prompt("choice")
	if !ok {
		return "", nil
	}
	switch {
	case input == "q":
		return "", nil
	case input == "b":
		return "/cinemas", nil
	case strings.HasPrefix(input, "p "), strings.HasPrefix(input, "c "):
		idx, okIdx := parseIndex(strings.TrimSpace(input[2:]), len(orders))
		if !okIdx {
			a.toasts.Warning("unknown order")
			return "/orders", nil
		}
		a.finalizeOrder(ctx, orders[idx], strings.HasPrefix(input, "p "))
		return "/orders", nil
	default:
		a.toasts.Warning("unknown choice")
		return "/orders", nil
	}
}

// finalizeOrder pays or cancels one order, reporting the outcome via toast.
// The order list is re-fetched by the caller either way.
func (a *app) finalizeOrder(ctx context.Context, order bookingapi.Order, pay bool) {
	var err error
	if pay {
		err = a.api.PayOrder(ctx, order.ID)
	} else {
		err = a.api.CancelOrder(ctx, order.ID)
	}

	switch {
	case err == nil && pay:
		a.toasts.Success(fmt.Sprintf("order %d paid", order.ID))
	case err == nil:
		a.toasts.Success(fmt.Sprintf("order %d cancelled", order.ID))
	case errors.Is(err, apiclient.ErrConflict):
		a.toasts.Error(fmt.Sprintf("order %d is expired or already finalized", order.ID))
	default:
		a.toasts.Error("operation failed: " + err.Error())
	}
}
