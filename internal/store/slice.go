package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is what views render. Data from the last successful load stays
// readable while Loading and after Failed.
type State[T any] struct {
	Status    Status    `json:"status"`
	RequestID string    `json:"requestId,omitempty"`
	Data      T         `json:"data"`
	Err       error     `json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s State[T]) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Ticket identifies one load. Only the latest ticket of a slice may settle it.
type Ticket struct {
	RequestID string
	seq       uint64
}

type Slice[T any] struct {
	store   *Store
	name    string
	state   State[T]
	seq     uint64
	settled Status
}

func (sl *Slice[T]) Name() string {
	return sl.name
}

// BeginLoad moves the slice to Loading and supersedes any load in flight.
func (sl *Slice[T]) BeginLoad() (Ticket, error) {
	var t Ticket
	err := sl.store.dispatch(func() {
		sl.seq++
		t = Ticket{RequestID: uuid.NewString(), seq: sl.seq}
		if sl.state.Status != StatusLoading {
			sl.settled = sl.state.Status
		}
		sl.state.Status = StatusLoading
		sl.state.RequestID = t.RequestID
	})
	return t, err
}

// Resolve stores data for t. It reports false and changes nothing when a newer
// load or update has happened since t was issued.
func (sl *Slice[T]) Resolve(t Ticket, data T) (bool, error) {
	applied := false
	err := sl.store.dispatch(func() {
		if t.seq != sl.seq {
			return
		}
		sl.state = State[T]{
			Status:    StatusLoaded,
			RequestID: t.RequestID,
			Data:      data,
			UpdatedAt: sl.store.now(),
		}
		applied = true
	})
	return applied, err
}

// Reject records a failed load for t, keeping the previous data.
func (sl *Slice[T]) Reject(t Ticket, cause error) (bool, error) {
	applied := false
	err := sl.store.dispatch(func() {
		if t.seq != sl.seq {
			return
		}
		sl.state.Status = StatusFailed
		sl.state.RequestID = t.RequestID
		sl.state.Err = cause
		sl.state.UpdatedAt = sl.store.now()
		applied = true
	})
	return applied, err
}

// Abandon returns the slice to the status it had before t began. Used when the
// caller left, so nothing is known about the upstream.
func (sl *Slice[T]) Abandon(t Ticket) (bool, error) {
	applied := false
	err := sl.store.dispatch(func() {
		if t.seq != sl.seq {
			return
		}
		sl.state.Status = sl.settled
		sl.state.RequestID = ""
		applied = true
	})
	return applied, err
}

// Update applies a server-confirmed change to the current data. A load still in
// flight started before the change, so its answer is dropped. A slice that was
// never loaded stays idle so its first read still fetches the full data.
func (sl *Slice[T]) Update(fn func(T) T) error {
	return sl.store.dispatch(func() {
		sl.seq++
		sl.state.Data = fn(sl.state.Data)
		if sl.state.Status != StatusIdle {
			sl.state.Status = StatusLoaded
		}
		sl.state.Err = nil
		sl.state.RequestID = ""
		sl.state.UpdatedAt = sl.store.now()
	})
}

// Fail surfaces an action error (clock-in refused, update rejected) on the slice
// without discarding its data.
func (sl *Slice[T]) Fail(cause error) error {
	return sl.store.dispatch(func() {
		sl.state.Err = cause
		if sl.state.Status != StatusLoading {
			sl.state.Status = StatusFailed
		}
		sl.state.UpdatedAt = sl.store.now()
	})
}

func (sl *Slice[T]) Snapshot() (State[T], error) {
	var st State[T]
	err := sl.store.dispatch(func() {
		st = sl.state
	})
	return st, err
}

// Load runs fetch under a fresh ticket and settles the slice with its result.
// A stale answer is discarded and the newer state is returned instead. A fetch
// cut short by ctx leaves no error on the slice.
func Load[T any](ctx context.Context, sl *Slice[T], fetch func(ctx context.Context) (T, error)) (State[T], error) {
	t, err := sl.BeginLoad()
	if err != nil {
		return State[T]{}, err
	}

	data, fetchErr := fetch(ctx)
	if fetchErr != nil {
		if ctx.Err() != nil {
			if _, err := sl.Abandon(t); err != nil {
				return State[T]{}, err
			}
			return State[T]{}, fetchErr
		}
		if _, err := sl.Reject(t, fetchErr); err != nil {
			return State[T]{}, err
		}
		return State[T]{}, fetchErr
	}

	if _, err := sl.Resolve(t, data); err != nil {
		return State[T]{}, err
	}
	return sl.Snapshot()
}
