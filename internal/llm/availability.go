package llm

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// defaultProbeTimeout bounds a single availability probe
const defaultProbeTimeout = 5 * time.Second

// Status is a snapshot of the backend availability check
type Status struct {
	Provider  Provider  `json:"provider"`
	Model     string    `json:"model,omitempty"`
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Availability records whether the model backend can be used.
// The backend is probed on first use. With a zero recheck interval the result is
// kept for the life of the process; otherwise it is refreshed once it is older
// than the interval. Concurrent refreshes share a single probe.
type Availability struct {
	client       Client
	recheck      time.Duration
	probeTimeout time.Duration
	now          func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	status  Status
	checked bool
}

// NewAvailability creates an availability check for client. A nil client is never available.
func NewAvailability(client Client, recheck time.Duration) *Availability {
	a := &Availability{
		client:       client,
		recheck:      recheck,
		probeTimeout: defaultProbeTimeout,
		now:          time.Now,
		status:       Status{Provider: ProviderNone},
	}
	if client != nil {
		a.status = Status{Provider: client.Provider(), Model: client.Model()}
	}
	return a
}

// Disabled returns an availability check with no backend
func Disabled() *Availability {
	return NewAvailability(nil, 0)
}

// Client returns the backend client, or nil when none is configured
func (a *Availability) Client() Client {
	return a.client
}

// Available reports whether the backend answered its most recent probe
func (a *Availability) Available(ctx context.Context) bool {
	return a.Status(ctx).Available
}

// Status returns the current availability, probing the backend if the cached result is stale
func (a *Availability) Status(ctx context.Context) Status {
	if a.client == nil {
		return a.snapshot()
	}

	a.mu.RLock()
	fresh := a.checked && (a.recheck <= 0 || a.now().Sub(a.status.CheckedAt) < a.recheck)
	a.mu.RUnlock()
	if fresh {
		return a.snapshot()
	}

	v, _, _ := a.group.Do("probe", func() (interface{}, error) {
		return a.probe(ctx), nil
	})
	return v.(Status)
}

func (a *Availability) probe(ctx context.Context) Status {
	// A caller that gives up early must not leave a false negative cached.
	probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.probeTimeout)
	defer cancel()

	status := Status{
		Provider:  a.client.Provider(),
		Model:     a.client.Model(),
		Available: true,
		CheckedAt: a.now(),
	}
	if err := a.client.Ping(probeCtx); err != nil {
		status.Available = false
		status.Error = err.Error()
	}

	a.mu.Lock()
	a.status = status
	a.checked = true
	a.mu.Unlock()

	return status
}

func (a *Availability) snapshot() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}
