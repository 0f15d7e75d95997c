package ui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"termface/internal/app/bus"
	"termface/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Debug()
	mockLog.EXPECT().Debug().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Warn().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Error().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func newTestModel(ctrl *gomock.Controller) (Model, *MockControls) {
	controls := NewMockControls(ctrl)

	m := Model{controls: controls, log: newTestLogger(ctrl)}
	m.msgChan = make(chan bus.Message)
	m.state.visible = true
	m.ui.keys = DefaultKeyMap()

	return m, controls
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func Test_NewModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := newTestLogger(ctrl)
	b := bus.New(log)
	defer b.Close()

	controls := NewMockControls(ctrl)
	controls.EXPECT().Ambient().Return(true)
	controls.EXPECT().Visible().Return(true)

	m := NewModel(context.Background(), b, controls, log)

	assert.Equal(t, bus.PhaseIdle, m.state.phase)
	assert.True(t, m.state.ambient)
	assert.True(t, m.state.visible)
	assert.NotNil(t, m.Init())
}

func Test_Init_ReceivesBusMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := newTestLogger(ctrl)
	b := bus.New(log)
	defer b.Close()

	controls := NewMockControls(ctrl)
	controls.EXPECT().Ambient().Return(false)
	controls.EXPECT().Visible().Return(false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewModel(ctx, b, controls, log)
	b.Publish(bus.Message{Type: bus.EventTimeZoneChanged, Data: bus.TimeZoneChanged{Zone: "Asia/Tokyo"}, Critical: true})

	msg := m.Init()()
	got, ok := msg.(msgMsg)

	assert.True(t, ok)
	assert.Equal(t, bus.EventTimeZoneChanged, got.Type)
}

func Test_Update_Keys(t *testing.T) {
	tests := []struct {
		name        string
		key         tea.KeyMsg
		before      func(c *MockControls)
		wantAmbient bool
		wantVisible bool
		wantQuit    bool
	}{
		{
			name: "ambient on",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")},
			before: func(c *MockControls) {
				c.EXPECT().Ambient().Return(false)
				c.EXPECT().SetAmbient(true)
			},
			wantAmbient: true,
			wantVisible: true,
		},
		{
			name: "ambient off",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")},
			before: func(c *MockControls) {
				c.EXPECT().Ambient().Return(true)
				c.EXPECT().SetAmbient(false)
			},
			wantAmbient: false,
			wantVisible: true,
		},
		{
			name: "hide",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")},
			before: func(c *MockControls) {
				c.EXPECT().Visible().Return(true)
				c.EXPECT().SetVisible(false)
			},
			wantVisible: false,
		},
		{
			name:        "quit",
			key:         tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")},
			before:      func(c *MockControls) {},
			wantVisible: true,
			wantQuit:    true,
		},
		{
			name:        "force quit",
			key:         tea.KeyMsg{Type: tea.KeyCtrlC},
			before:      func(c *MockControls) {},
			wantVisible: true,
			wantQuit:    true,
		},
		{
			name:        "unbound key",
			key:         tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
			before:      func(c *MockControls) {},
			wantVisible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, controls := newTestModel(ctrl)
			tt.before(controls)

			result, cmd := m.Update(tt.key)
			got := result.(Model)

			assert.Equal(t, tt.wantAmbient, got.state.ambient)
			assert.Equal(t, tt.wantVisible, got.state.visible)
			assert.Equal(t, tt.wantQuit, isQuit(cmd))
		})
	}
}

func Test_Update_FrameDrawn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(ctrl)

	frame := bus.FrameDrawn{
		Lines:    [4]string{"root@watch:~$ date +%T", "09:41:07", "root@watch:~$ date +%x", "14.03.24"},
		Rows:     [3]string{"001001", "101001", "000111"},
		Duration: 3 * time.Millisecond,
	}

	result, cmd := m.Update(msgMsg(bus.Message{Type: bus.EventFrameDrawn, Data: frame}))
	got := result.(Model)

	assert.NotNil(t, cmd)
	assert.True(t, got.state.drawn)
	assert.Equal(t, 1, got.state.frames)
	assert.Equal(t, frame.Lines, got.state.lines)
	assert.Equal(t, frame.Rows, got.state.rows)
	assert.Equal(t, 3*time.Millisecond, got.state.took)
}

func Test_Update_BusEvents(t *testing.T) {
	tests := []struct {
		name   string
		msg    bus.Message
		assert func(t *testing.T, m Model)
	}{
		{
			name: "ambient changed",
			msg:  bus.Message{Type: bus.EventAmbientChanged, Data: bus.AmbientChanged{Ambient: true}},
			assert: func(t *testing.T, m Model) {
				assert.True(t, m.state.ambient)
			},
		},
		{
			name: "visibility changed",
			msg:  bus.Message{Type: bus.EventVisibilityChanged, Data: bus.VisibilityChanged{Visible: false}},
			assert: func(t *testing.T, m Model) {
				assert.False(t, m.state.visible)
			},
		},
		{
			name: "zone changed",
			msg:  bus.Message{Type: bus.EventTimeZoneChanged, Data: bus.TimeZoneChanged{Zone: "Europe/Berlin"}},
			assert: func(t *testing.T, m Model) {
				assert.Equal(t, "Europe/Berlin", m.state.zone)
			},
		},
		{
			name: "draw failed",
			msg:  bus.Message{Type: bus.EventDrawFailed, Data: bus.DrawFailed{Error: errors.New("boom")}},
			assert: func(t *testing.T, m Model) {
				assert.EqualError(t, m.state.lastErr, "boom")
			},
		},
		{
			name: "phase sized",
			msg:  bus.Message{Type: bus.EventPhaseChanged, Data: bus.PhaseChanged{Phase: bus.PhaseSized}},
			assert: func(t *testing.T, m Model) {
				assert.Equal(t, bus.PhaseSized, m.state.phase)
			},
		},
		{
			name: "invalid data ignored",
			msg:  bus.Message{Type: bus.EventAmbientChanged, Data: "invalid"},
			assert: func(t *testing.T, m Model) {
				assert.False(t, m.state.ambient)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, _ := newTestModel(ctrl)

			result, cmd := m.Update(msgMsg(tt.msg))

			assert.NotNil(t, cmd)
			tt.assert(t, result.(Model))
		})
	}
}

func Test_Update_QuitsOnDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(ctrl)

	_, cmd := m.Update(msgMsg(bus.Message{Type: bus.EventPhaseChanged, Data: bus.PhaseChanged{Phase: bus.PhaseDestroyed}}))

	assert.True(t, isQuit(cmd))
}

func Test_Update_ChannelClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(ctrl)

	_, cmd := m.Update(channelClosedMsg{})

	assert.True(t, isQuit(cmd))
}

func Test_Update_WindowSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(ctrl)

	result, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := result.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 80, got.ui.width)
	assert.Equal(t, 24, got.ui.height)
}

func Test_WaitForMsgCmd_Closed(t *testing.T) {
	ch := make(chan bus.Message)
	close(ch)

	msg := waitForMsgCmd(ch)()

	assert.Equal(t, channelClosedMsg{}, msg)
}
