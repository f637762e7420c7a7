package store

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"hris-portal/internal/shared/apperror"
)

// ErrStoreClosed is returned to requests that raced a logout or a sweep.
var ErrStoreClosed = apperror.New(apperror.CodeUnauthorized, "Your session has ended, please log in again", http.StatusUnauthorized)

// Store holds the slices of one browser session. Every read and write of every
// slice runs on the store's own goroutine, in the order it was dispatched.
type Store struct {
	id        string
	actions   chan func()
	done      chan struct{}
	closeOnce sync.Once
	slices    map[string]any
	now       func() time.Time
}

func New(id string) *Store {
	s := &Store{
		id:      id,
		actions: make(chan func()),
		done:    make(chan struct{}),
		slices:  make(map[string]any),
		now:     time.Now,
	}
	go s.loop()
	return s
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) loop() {
	for {
		select {
		case fn := <-s.actions:
			fn()
		case <-s.done:
			return
		}
	}
}

// dispatch runs fn on the store goroutine and waits for it. The channel is
// unbuffered, so once the send succeeds fn is guaranteed to run.
func (s *Store) dispatch(fn func()) error {
	ran := make(chan struct{})
	select {
	case s.actions <- func() { fn(); close(ran) }:
	case <-s.done:
		return ErrStoreClosed
	}
	<-ran
	return nil
}

func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Use returns the named slice, creating it on first use. Asking for an
// existing name with a different data type is a programming error and panics.
func Use[T any](s *Store, name string) *Slice[T] {
	var existing any
	err := s.dispatch(func() {
		if sl, ok := s.slices[name]; ok {
			existing = sl
			return
		}
		sl := &Slice[T]{store: s, name: name}
		s.slices[name] = sl
		existing = sl
	})
	if err != nil {
		// detached slice; every operation on it reports ErrStoreClosed
		return &Slice[T]{store: s, name: name}
	}

	typed, ok := existing.(*Slice[T])
	if !ok {
		panic(fmt.Sprintf("store: slice %q registered with type %T", name, existing))
	}
	return typed
}
