// Package ratelimit implements fixed-window admission control over a shared atomic counter store.
//
// A window starts with the first action for a key: the store creates the counter
// at 1 and the limiter sets its TTL to the policy duration. Every later action in
// the window increments the same counter. Once the store expires the key the next
// action opens a new window. Bursts of up to twice the limit are possible across
// adjacent windows.
package ratelimit

import (
	"context"
	"strings"
	"time"
)

const (
	keyPrefix       = "ratelimit"
	unknownClientID = "unknown"

	// ProductionEnv is the only environment in which limiting is active
	ProductionEnv = "production"
)

// Decisions reported to the Recorder
const (
	DecisionAllowed  = "allowed"
	DecisionDenied   = "denied"
	DecisionFailOpen = "fail_open"
	DecisionDisabled = "disabled"
)

// Policy describes one rate-limited action
type Policy struct {
	Identifier string        // action name used for key namespacing
	Limit      int           // max actions per window
	Duration   time.Duration // window length
}

// Store is an atomic counter store with key expiry.
// Incr must be atomic against concurrent callers across processes.
type Store interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Recorder receives admission decisions, e.g. for metrics
type Recorder interface {
	RecordRateLimit(policy, decision string)
}

// Logger is the subset of the service logger the limiter needs
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Limiter decides whether a client may perform an action.
// It holds no in-process state; all counting happens in the Store.
type Limiter struct {
	store    Store
	enabled  bool
	recorder Recorder
	logger   Logger
}

// New creates a limiter over store. A nil store yields a disabled limiter.
func New(store Store, logger Logger) *Limiter {
	return &Limiter{
		store:   store,
		enabled: store != nil,
		logger:  logger,
	}
}

// Disabled returns a limiter that admits everything
func Disabled(logger Logger) *Limiter {
	return &Limiter{logger: logger}
}

// WithRecorder attaches a decision recorder
func (l *Limiter) WithRecorder(r Recorder) *Limiter {
	l.recorder = r
	return l
}

// Enabled reports whether limiting applies in env with the given store address.
// Outside production, or with no store configured, the limiter is a no-op.
func Enabled(env, storeAddr string) bool {
	return strings.EqualFold(strings.TrimSpace(env), ProductionEnv) && strings.TrimSpace(storeAddr) != ""
}

// IsEnabled reports whether this limiter consults a store
func (l *Limiter) IsEnabled() bool {
	return l.enabled
}

// Allow reports whether clientID may perform the policy's action now.
// Store failures fail open: the action is allowed and the error logged.
func (l *Limiter) Allow(ctx context.Context, clientID string, policy Policy) bool {
	if !l.enabled {
		l.record(policy, DecisionDisabled)
		return true
	}

	key := Key(policy.Identifier, clientID)

	count, err := l.store.Incr(ctx, key)
	if err != nil {
		l.logger.Error("ratelimit: incr key=%s failed, allowing request: %v", key, err)
		l.record(policy, DecisionFailOpen)
		return true
	}

	// First hit opens the window. A crash between Incr and Expire leaves the key
	// without TTL; the client then stays limited longer, never shorter.
	if count == 1 {
		if err := l.store.Expire(ctx, key, policy.Duration); err != nil {
			l.logger.Error("ratelimit: expire key=%s failed: %v", key, err)
		}
	}

	if count > int64(policy.Limit) {
		l.logger.Warn("ratelimit: denied policy=%s client=%s count=%d limit=%d",
			policy.Identifier, normalizeClientID(clientID), count, policy.Limit)
		l.record(policy, DecisionDenied)
		return false
	}

	l.record(policy, DecisionAllowed)
	return true
}

// Key composes the store key for a policy and client
func Key(identifier, clientID string) string {
	return keyPrefix + ":" + identifier + ":" + normalizeClientID(clientID)
}

func normalizeClientID(clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return unknownClientID
	}
	return clientID
}

func (l *Limiter) record(policy Policy, decision string) {
	if l.recorder != nil {
		l.recorder.RecordRateLimit(policy.Identifier, decision)
	}
}
