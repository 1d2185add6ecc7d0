package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cinetick/cinetick/pkg/bookingapi"
	"github.com/cinetick/cinetick/pkg/navigator"
	"github.com/cinetick/cinetick/pkg/session"
	"github.com/cinetick/cinetick/pkg/toast"
)

// app owns the wired components and the screen handlers. One instance per
// process, driven by the navigator from a single goroutine.
type app struct {
	log    *slog.Logger
	store  *session.Store
	api    *bookingapi.Client
	nav    *navigator.Navigator
	toasts *toast.Presenter
	in     *bufio.Scanner
	out    io.Writer
}

func newApp(store *session.Store, toasts *toast.Presenter, log *slog.Logger, in io.Reader, out io.Writer) *app {
	a := &app{
		log:    log,
		store:  store,
		toasts: toasts,
		in:     bufio.NewScanner(in),
		out:    out,
	}

	nav := navigator.New()
	nav.Redirect("/", "/cinemas")
	nav.Handle("/login", a.loginScreen)
	nav.Handle("/cinemas", a.cinemaScreen)
	nav.Handle("/schedules/:id/seats", a.seatScreen)
	nav.Handle("/orders", a.ordersScreen)
	nav.Use(navigator.AuthGuard(store, "/login"))
	a.nav = nav

	return a
}

// onSessionExpired is the pipeline's unauthorized hook: drop the persisted
// token and push the application to the login screen. The failed call still
// returns its error to the screen that issued it.
func (a *app) onSessionExpired(ctx context.Context) {
	if err := a.store.ClearToken(); err != nil {
		a.log.LogAttrs(ctx, slog.LevelWarn, "failed to clear token", slog.String("error", err.Error()))
	}
	a.nav.ForceRedirect("/login")
	a.toasts.Warning("session expired, please log in again")
}

// prompt prints a label and reads one trimmed line. ok is false on EOF,
// which screens treat as a request to quit.
func (a *app) prompt(label string) (value string, ok bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		fmt.Fprintln(a.out)
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// parseIndex reads a 1-based menu choice into a slice index.
func parseIndex(input string, length int) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > length {
		return 0, false
	}
	return n - 1, true
}
