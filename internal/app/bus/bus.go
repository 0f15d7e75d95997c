package bus

//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"termface/internal/config"
	"termface/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventPhaseChanged      MessageType = "phase_changed"
	EventSurfaceChanged    MessageType = "surface_changed"
	EventVisibilityChanged MessageType = "visibility_changed"
	EventAmbientChanged    MessageType = "ambient_changed"
	EventTimeTick          MessageType = "time_tick"
	EventTimeZoneChanged   MessageType = "timezone_changed"
	EventFrameDrawn        MessageType = "frame_drawn"
	EventDrawFailed        MessageType = "draw_failed"
	EventSignal            MessageType = "signal"
)

// Command types
const (
	CommandToggleAmbient    MessageType = "cmd_toggle_ambient"
	CommandToggleVisibility MessageType = "cmd_toggle_visibility"
	CommandQuit             MessageType = "cmd_quit"
)

// Phase represents the surface phase of the face
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseCreated   Phase = "created"
	PhaseSized     Phase = "sized"
	PhaseDestroyed Phase = "destroyed"
)

// Message represents a bus message (event or command)
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// PhaseChanged indicates a surface phase transition
type PhaseChanged struct {
	Phase Phase
}

// SurfaceChanged carries the new surface size
type SurfaceChanged struct {
	Width  int
	Height int
}

// VisibilityChanged carries the new visibility flag
type VisibilityChanged struct {
	Visible bool
}

// AmbientChanged carries the new ambient flag
type AmbientChanged struct {
	Ambient bool
}

// TimeZoneChanged names the zone the face rebinds to
type TimeZoneChanged struct {
	Zone string
}

// FrameDrawn describes one completed repaint
type FrameDrawn struct {
	Lines    [4]string
	Rows     [3]string
	Ambient  bool
	Duration time.Duration
}

// DrawFailed indicates a repaint that completed with an error
type DrawFailed struct {
	Error error
}

// Signal contains information about a received OS signal
type Signal struct {
	Name string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(log logger.Logger) Bus {
	return &bus{
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, config.BusBuffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil && msg.Type != EventFrameDrawn {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case PhaseChanged:
		return fmt.Sprintf("{phase: %s}", d.Phase)
	case SurfaceChanged:
		return fmt.Sprintf("{size: %dx%d}", d.Width, d.Height)
	case VisibilityChanged:
		return fmt.Sprintf("{visible: %t}", d.Visible)
	case AmbientChanged:
		return fmt.Sprintf("{ambient: %t}", d.Ambient)
	case TimeZoneChanged:
		return fmt.Sprintf("{zone: %s}", d.Zone)
	case FrameDrawn:
		return fmt.Sprintf("{time: %s, took: %s}", d.Lines[1], d.Duration)
	case DrawFailed:
		return fmt.Sprintf("{error: %v}", d.Error)
	case Signal:
		return fmt.Sprintf("{signal: %s}", d.Name)
	case nil:
		return "{}"
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
