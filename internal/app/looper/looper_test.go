package looper

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"termface/internal/app/errors"
	"termface/internal/config"
	"termface/internal/config/logger"
)

func newTestLooper(t *testing.T) (Looper, context.CancelFunc) {
	t.Helper()

	cfg := config.DefaultConfig()
	l := NewLooper(logger.NewLoggerWithOutput(cfg, io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = l.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})

	return l, cancel
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for looper")
	}
}

func Test_Post_RunsInOrder(t *testing.T) {
	l, _ := newTestLooper(t)

	var got []int
	done := make(chan struct{})

	for i := 0; i < 5; i++ {
		i := i
		assert.True(t, l.Post(func() { got = append(got, i) }))
	}

	l.Post(func() { close(done) })
	waitFor(t, done)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func Test_Post_BeforeRun(t *testing.T) {
	cfg := config.DefaultConfig()
	l := NewLooper(logger.NewLoggerWithOutput(cfg, io.Discard))

	done := make(chan struct{})
	l.Post(func() { close(done) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = l.Run(ctx) }()

	waitFor(t, done)
}

func Test_PostDelayed(t *testing.T) {
	l, _ := newTestLooper(t)

	start := time.Now()
	done := make(chan struct{})

	assert.True(t, l.PostDelayed("tick", 30*time.Millisecond, func() { close(done) }))
	assert.True(t, l.HasMessages("tick"))

	waitFor(t, done)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.False(t, l.HasMessages("tick"))
}

func Test_PostDelayed_ZeroDelayIsTagged(t *testing.T) {
	cfg := config.DefaultConfig()
	l := NewLooper(logger.NewLoggerWithOutput(cfg, io.Discard))

	l.PostDelayed("tick", 0, func() {})

	assert.True(t, l.HasMessages("tick"))

	l.RemoveMessages("tick")

	assert.False(t, l.HasMessages("tick"))
}

func Test_RemoveMessages(t *testing.T) {
	l, _ := newTestLooper(t)

	var mu sync.Mutex
	fired := map[string]int{}

	record := func(tag string) func() {
		return func() {
			mu.Lock()
			fired[tag]++
			mu.Unlock()
		}
	}

	l.PostDelayed("update_time", 20*time.Millisecond, record("update_time"))
	l.PostDelayed("update_time", 25*time.Millisecond, record("update_time"))
	l.PostDelayed("other", 20*time.Millisecond, record("other"))

	l.RemoveMessages("update_time")
	assert.False(t, l.HasMessages("update_time"))
	assert.True(t, l.HasMessages("other"))

	time.Sleep(60 * time.Millisecond)

	done := make(chan struct{})
	l.Post(func() { close(done) })
	waitFor(t, done)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, 0, fired["update_time"])
	assert.Equal(t, 1, fired["other"])
}

func Test_RemoveMessages_FromLooperThread(t *testing.T) {
	l, _ := newTestLooper(t)

	ran := false
	done := make(chan struct{})

	l.Post(func() {
		l.PostDelayed("update_time", 0, func() { ran = true })
		l.RemoveMessages("update_time")
	})
	l.Post(func() { close(done) })

	waitFor(t, done)

	assert.False(t, ran)
}

func Test_Quit(t *testing.T) {
	cfg := config.DefaultConfig()
	l := NewLooper(logger.NewLoggerWithOutput(cfg, io.Discard))

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(context.Background()) }()

	l.PostDelayed("tick", time.Hour, func() {})
	l.Quit()
	l.Quit()

	waitFor(t, l.Done())

	assert.NoError(t, <-errCh)
	assert.False(t, l.Post(func() {}))
	assert.False(t, l.PostDelayed("tick", 0, func() {}))
	assert.False(t, l.HasMessages("tick"))
}

func Test_Run_Cancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	l := NewLooper(logger.NewLoggerWithOutput(cfg, io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	cancel()
	waitFor(t, l.Done())

	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.ErrorIs(t, l.Run(context.Background()), errors.ErrLooperStopped)
}
