package content

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/eringen/cmsconsole/api"
)

// Result is the outcome of a mutation. Services never return mutation
// errors directly: the handler branches on Success and shows Error.
type Result struct {
	Success bool
	Error   string
	// Fields is set when the draft failed validation.
	Fields ValidationErrors
	// Err is the underlying failure, kept so callers can detect an expired
	// session with errors.Is(res.Err, api.ErrUnauthorized).
	Err error
}

func succeeded() Result { return Result{Success: true} }

func invalid(errs ValidationErrors) Result {
	return Result{Error: errs.Error(), Fields: errs, Err: errs}
}

func failed(err error, fallback string) Result {
	return Result{Error: api.Message(err, fallback), Err: err}
}

// Expired reports whether the failure was the API rejecting the session.
func (r Result) Expired() bool {
	return errors.Is(r.Err, api.ErrUnauthorized)
}

// Notifier receives the transient success and error toasts a service
// emits alongside its state changes.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Requester is the subset of *api.Client the services use.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body api.Body, out any) error
	Put(ctx context.Context, path string, body api.Body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type base struct {
	api    Requester
	notify Notifier
	logger *slog.Logger
}

// Option configures a service.
type Option func(*base)

// WithNotifier routes toasts to n.
func WithNotifier(n Notifier) Option {
	return func(b *base) {
		if n != nil {
			b.notify = n
		}
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *slog.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.logger = l
		}
	}
}

// mutate runs fn with loading set, logging and announcing any failure.
func (b base) mutate(ctx context.Context, loading *bool, op string, fn func() Result) Result {
	*loading = true
	defer func() { *loading = false }()
	res := fn()
	if !res.Success {
		b.logger.WarnContext(ctx, op, slog.String("error", res.Error))
		b.notify.Error(res.Error)
	}
	return res
}

func newBase(r Requester, opts []Option) base {
	b := base{api: r, notify: nopNotifier{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// ErrBusy is returned by Guard when a session already has a mutation in flight.
var ErrBusy = errors.New("content: mutation already in progress")

// BusyMessage is shown to the user when ErrBusy rejects a submission.
const BusyMessage = "Another request is already in progress"

// Guard serialises mutations per key, normally the session id. A second
// submission while the first is still running is rejected, not queued.
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// Acquire marks key busy. The returned release must be called when the
// mutation finishes.
func (g *Guard) Acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[key]; ok {
		return nil, ErrBusy
	}
	g.busy[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, nil
}
