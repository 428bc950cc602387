package paperbloom

// Functional options configuring a Session during Open. Keeping them in a
// standalone file makes every available knob discoverable at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Session during construction in Open. Options are
// applied before the snapshot restore / remote load happens.
type Option func(*Session) error

// WithBaseURL overrides the remote store base URL (default comes from
// PAPERBLOOM_BASE_URL).
func WithBaseURL(u string) Option {
	return func(s *Session) error {
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		s.baseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client timeout. Prefer per-request
// context deadlines; this is a coarse safety net bounding a whole request.
func WithHTTPTimeout(d time.Duration) Option {
	return func(s *Session) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		s.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the HTTP client used for remote calls, e.g. with an
// httptest server client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) error {
		if c == nil {
			return fmt.Errorf("http client must not be nil")
		}
		s.http = c
		return nil
	}
}

// WithDebounceWindow sets the quiet period before a snapshot write commits.
// The default is 2s (PAPERBLOOM_DEBOUNCE_WINDOW).
func WithDebounceWindow(d time.Duration) Option {
	return func(s *Session) error {
		if d <= 0 {
			return fmt.Errorf("debounce window must be > 0")
		}
		s.window = d
		return nil
	}
}

// WithSnapshotStore replaces the default SQLite-backed snapshot store. The
// session does not close a caller-provided store.
func WithSnapshotStore(st SnapshotStore) Option {
	return func(s *Session) error {
		if st == nil {
			return fmt.Errorf("snapshot store must not be nil")
		}
		s.store = st
		s.ownStore = false
		return nil
	}
}

// WithSequencedSaves routes saves through a per-entity FIFO queue so two
// overlapping saves of the same card can never apply responses out of order.
// Off by default: without it saves run concurrently and the last response to
// arrive wins, matching the observed product behavior.
func WithSequencedSaves() Option {
	return func(s *Session) error {
		s.sequenced = true
		return nil
	}
}

// WithClock overrides the time source used to stamp UpdatedAt and snapshot
// times. For tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		s.now = now
		return nil
	}
}

// WithLogger replaces the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) error {
		s.log = l
		return nil
	}
}

// WithDebugLogging wraps the HTTP transport so each request/response is
// dumped to the log when enabled. Do not enable in production.
func WithDebugLogging(enabled bool) Option {
	return func(s *Session) error {
		if enabled {
			base := s.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			s.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
