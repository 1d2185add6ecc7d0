package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNoRoute indicates a navigation target with no registered handler
	ErrNoRoute = errors.New("navigator.no_route")

	// ErrTooManyRedirects indicates a guard or redirect loop
	ErrTooManyRedirects = errors.New("navigator.too_many_redirects")
)

// maxRedirects bounds guard/redirect chains for a single navigation.
const maxRedirects = 10

// Params holds values captured from :param segments of the matched route.
type Params map[string]string

// HandlerFunc renders one screen and returns the path to navigate to next.
// Returning "" ends the navigation loop.
type HandlerFunc func(ctx context.Context, params Params) (next string, err error)

// Guard inspects a destination before navigation and may redirect it.
// Returning "" lets the navigation proceed unchanged.
type Guard func(path string) (redirect string)

// TokenSource reports the current persisted session token.
type TokenSource interface {
	Token() string
}

// AuthGuard redirects every destination except loginPath to loginPath while
// no token is persisted. Navigation with a token, and navigation to the
// login screen itself, always proceed unchanged.
func AuthGuard(tokens TokenSource, loginPath string) Guard {
	return func(path string) string {
		if tokens.Token() == "" && path != loginPath {
			return loginPath
		}
		return ""
	}
}

type route struct {
	segments []string
	handler  HandlerFunc
}

// Navigator is the route table and navigation loop. Registration is done
// once at startup; Run drives screens from a single goroutine.
type Navigator struct {
	mu        sync.Mutex
	routes    []route
	redirects map[string]string
	guards    []Guard
	pending   string
}

// New creates an empty navigator.
func New() *Navigator {
	return &Navigator{redirects: make(map[string]string)}
}

// Handle registers a handler for a path pattern. Segments starting with ":"
// capture the corresponding path segment into Params.
func (n *Navigator) Handle(pattern string, handler HandlerFunc) {
	n.routes = append(n.routes, route{segments: splitPath(pattern), handler: handler})
}

// Redirect registers a static redirect, e.g. "/" to "/cinemas".
func (n *Navigator) Redirect(from, to string) {
	n.redirects[from] = to
}

// Use appends a guard that runs before every navigation, in registration
// order.
func (n *Navigator) Use(guard Guard) {
	n.guards = append(n.guards, guard)
}

// ForceRedirect requests that the next navigation goes to path, overriding
// whatever the current handler returns. Safe to call from hooks that run
// while a handler is blocked in a request.
func (n *Navigator) ForceRedirect(path string) {
	n.mu.Lock()
	n.pending = path
	n.mu.Unlock()
}

// Navigate resolves path through redirects and guards, runs the matched
// handler and returns the next destination.
func (n *Navigator) Navigate(ctx context.Context, path string) (string, error) {
	resolved, err := n.resolve(path)
	if err != nil {
		return "", err
	}

	handler, params, ok := n.match(resolved)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRoute, resolved)
	}

	next, err := handler(ctx, params)
	if err != nil {
		return "", err
	}

	// A forced redirect (session expiry mid-screen) wins over the
	// handler's own choice.
	n.mu.Lock()
	if n.pending != "" {
		next = n.pending
		n.pending = ""
	}
	n.mu.Unlock()

	return next, nil
}

// Run navigates from start until a handler returns an empty next path.
func (n *Navigator) Run(ctx context.Context, start string) error {
	path := start
	for path != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := n.Navigate(ctx, path)
		if err != nil {
			return err
		}
		path = next
	}
	return nil
}

// resolve applies static redirects and guards until the destination is
// stable.
func (n *Navigator) resolve(path string) (string, error) {
	for hops := 0; hops < maxRedirects; hops++ {
		if to, ok := n.redirects[path]; ok {
			path = to
			continue
		}

		redirected := false
		for _, guard := range n.guards {
			if to := guard(path); to != "" && to != path {
				path = to
				redirected = true
				break
			}
		}
		if !redirected {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTooManyRedirects, path)
}

func (n *Navigator) match(path string) (HandlerFunc, Params, bool) {
	segments := splitPath(path)
	for _, r := range n.routes {
		if params, ok := matchSegments(r.segments, segments); ok {
			return r.handler, params, true
		}
	}
	return nil, nil, false
}

func matchSegments(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := Params{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
