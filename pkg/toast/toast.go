package toast

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Type is the severity category of a toast.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// DefaultDuration applies when Options.Duration is not positive.
const DefaultDuration = 3 * time.Second

// Options configures a single toast.
type Options struct {
	Message  string
	Type     Type
	Duration time.Duration
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithColors toggles ANSI color output. Enabled by default; disable when
// writing to something that is not a terminal.
func WithColors(enabled bool) Option {
	return func(p *Presenter) { p.colors = enabled }
}

// Presenter renders toasts to a writer and enforces the single-instance
// contract: showing a toast replaces any live one atomically.
type Presenter struct {
	mu     sync.Mutex
	w      io.Writer
	colors bool
	active *Toast
}

// New creates a presenter writing to w.
func New(w io.Writer, opts ...Option) *Presenter {
	p := &Presenter{w: w, colors: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Show displays a message with default styling and duration.
func (p *Presenter) Show(message string) *Toast {
	return p.ShowWith(Options{Message: message})
}

// ShowWith displays a toast. Any previous live toast is dismissed first;
// the new one self-dismisses after its duration.
func (p *Presenter) ShowWith(opts Options) *Toast {
	if opts.Type == "" {
		opts.Type = TypeInfo
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil {
		p.active.stop()
		p.active = nil
	}

	fmt.Fprintln(p.w, p.render(opts))

	t := &Toast{presenter: p}
	t.timer = time.AfterFunc(opts.Duration, t.Close)
	p.active = t
	return t
}

// Success shows a success toast with the default duration.
func (p *Presenter) Success(message string) *Toast {
	return p.ShowWith(Options{Message: message, Type: TypeSuccess})
}

// Error shows an error toast with the default duration.
func (p *Presenter) Error(message string) *Toast {
	return p.ShowWith(Options{Message: message, Type: TypeError})
}

// Warning shows a warning toast with the default duration.
func (p *Presenter) Warning(message string) *Toast {
	return p.ShowWith(Options{Message: message, Type: TypeWarning})
}

// Info shows an info toast with the default duration.
func (p *Presenter) Info(message string) *Toast {
	return p.ShowWith(Options{Message: message, Type: TypeInfo})
}

// Active returns the currently live toast, or nil when none is mounted.
func (p *Presenter) Active() *Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Presenter) render(opts Options) string {
	label, color := badge(opts.Type)
	if !p.colors {
		return fmt.Sprintf("[%s] %s", label, opts.Message)
	}
	return fmt.Sprintf("\x1b[%sm[%s]\x1b[0m %s", color, label, opts.Message)
}

func badge(t Type) (label, color string) {
	switch t {
	case TypeSuccess:
		return "OK", "32"
	case TypeError:
		return "ERROR", "31"
	case TypeWarning:
		return "WARN", "33"
	default:
		return "INFO", "36"
	}
}

// Toast is the handle to one mounted notification.
type Toast struct {
	presenter *Presenter
	timer     *time.Timer
}

// Close dismisses the toast and releases its timer. Closing an already
// dismissed or replaced toast is a no-op.
func (t *Toast) Close() {
	t.presenter.mu.Lock()
	defer t.presenter.mu.Unlock()

	t.stop()
	if t.presenter.active == t {
		t.presenter.active = nil
	}
}

// stop halts the dismissal timer. Callers must hold the presenter lock.
func (t *Toast) stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}
