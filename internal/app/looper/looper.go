package looper

import (
	"context"
	"sync"
	"time"

	"termface/internal/app/errors"
	"termface/internal/config/logger"
)

// Looper runs posted callbacks one at a time on a single goroutine.
// Every face callback, timer and repaint executes on it, so handlers never overlap.
type Looper interface {
	Post(fn func()) bool
	PostDelayed(tag string, delay time.Duration, fn func()) bool
	RemoveMessages(tag string)
	HasMessages(tag string) bool
	Run(ctx context.Context) error
	Quit()
	Done() <-chan struct{}
}

type message struct {
	id  uint64
	tag string
	fn  func()
}

type pending struct {
	message
	timer *time.Timer
}

// looper implements the Looper interface
type looper struct {
	mu      sync.Mutex
	queue   []message
	pending map[uint64]*pending
	nextID  uint64
	running bool
	stopped bool

	wake     chan struct{}
	quit     chan struct{}
	done     chan struct{}
	quitOnce sync.Once

	log logger.Logger
}

// NewLooper creates a new Looper; callbacks run once Run is called
func NewLooper(log logger.Logger) Looper {
	return &looper{
		pending: make(map[uint64]*pending),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		log:     log.WithComponent(logger.ComponentLooper),
	}
}

// Post enqueues fn to run as soon as possible, returns false once stopped
func (l *looper) Post(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}

	l.enqueue(message{id: l.id(), fn: fn})

	return true
}

// PostDelayed enqueues fn under tag after delay, returns false once stopped
func (l *looper) PostDelayed(tag string, delay time.Duration, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}

	msg := message{id: l.id(), tag: tag, fn: fn}

	if delay <= 0 {
		l.enqueue(msg)
		return true
	}

	p := &pending{message: msg}
	p.timer = time.AfterFunc(delay, func() { l.fire(msg.id) })
	l.pending[msg.id] = p

	return true
}

// RemoveMessages cancels every queued or pending message carrying tag
func (l *looper) RemoveMessages(tag string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, p := range l.pending {
		if p.tag == tag {
			p.timer.Stop()
			delete(l.pending, id)
		}
	}

	kept := l.queue[:0]
	for _, msg := range l.queue {
		if msg.tag != tag {
			kept = append(kept, msg)
		}
	}

	for i := len(kept); i < len(l.queue); i++ {
		l.queue[i] = message{}
	}

	l.queue = kept
}

// HasMessages reports whether a message with tag is queued or pending
func (l *looper) HasMessages(tag string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.pending {
		if p.tag == tag {
			return true
		}
	}

	for _, msg := range l.queue {
		if msg.tag == tag {
			return true
		}
	}

	return false
}

// Run processes messages until ctx is cancelled or Quit is called
func (l *looper) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running || l.stopped {
		l.mu.Unlock()
		return errors.ErrLooperStopped
	}

	l.running = true
	l.mu.Unlock()

	defer close(l.done)
	defer l.stop()

	l.log.Debug().Msg("Looper started")

	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Msg("Looper cancelled")
			return ctx.Err()
		case <-l.quit:
			l.log.Debug().Msg("Looper quit")
			return nil
		case <-l.wake:
			l.drain(ctx)
		}
	}
}

// Quit stops the loop after the running callback returns
func (l *looper) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Done is closed when Run returns
func (l *looper) Done() <-chan struct{} {
	return l.done
}

func (l *looper) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.quit:
			return
		default:
		}

		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}

		msg := l.queue[0]
		l.queue[0] = message{}
		l.queue = l.queue[1:]
		l.mu.Unlock()

		msg.fn()
	}
}

func (l *looper) fire(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.pending[id]
	if !ok || l.stopped {
		return
	}

	delete(l.pending, id)
	l.enqueue(p.message)
}

func (l *looper) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true

	for id, p := range l.pending {
		p.timer.Stop()
		delete(l.pending, id)
	}

	l.queue = nil
}

// enqueue must be called with mu held
func (l *looper) enqueue(msg message) {
	l.queue = append(l.queue, msg)

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// id must be called with mu held
func (l *looper) id() uint64 {
	l.nextID++
	return l.nextID
}
