package device

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for Device.
//
// Play blocks for a configurable settle delay so tests can exercise
// command interruption; loads, plays, pauses, seeks and volumes are
// recorded for assertions.
type Mock struct {
	mu       sync.Mutex
	loaded   string
	duration float64
	position float64
	playing  bool
	settle   time.Duration

	loadErr error
	playErr error

	loads   []string
	plays   int
	pauses  int
	seeks   []float64
	volumes []float64

	events chan Event
	once   sync.Once
}

var _ Device = (*Mock)(nil)

// NewMock creates a mock device.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, eventBufferSize)}
}

func (m *Mock) Load(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, uri)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = uri
	m.position = 0
	m.playing = false
	return nil
}

func (m *Mock) Play(ctx context.Context) error {
	m.mu.Lock()
	settle := m.settle
	err := m.playErr
	m.mu.Unlock()

	if settle > 0 {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-time.After(settle):
		}
	} else if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.plays++
	m.playing = true
	m.mu.Unlock()
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	m.playing = false
	return nil
}

func (m *Mock) SeekTo(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, seconds)
	m.position = seconds
}

func (m *Mock) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes = append(m.volumes, v)
}

func (m *Mock) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded = ""
	m.playing = false
	m.position = 0
}

func (m *Mock) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event {
	return m.events
}

func (m *Mock) Close() error {
	m.once.Do(func() { close(m.events) })
	return nil
}

// Test helpers

func (m *Mock) SetSettleDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settle = d
}

func (m *Mock) SetDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = seconds
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) Loaded() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *Mock) Plays() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plays
}

func (m *Mock) Pauses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) Seeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seeks...)
}

func (m *Mock) Volumes() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumes...)
}

func (m *Mock) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// EmitTimeUpdate simulates a device timeUpdate event.
func (m *Mock) EmitTimeUpdate(position, duration float64) {
	m.mu.Lock()
	m.position = position
	m.duration = duration
	m.mu.Unlock()
	m.events <- Event{Kind: EventTimeUpdate, Position: position, Duration: duration}
}

// EmitEnded simulates the loaded resource reaching its end.
func (m *Mock) EmitEnded() {
	m.events <- Event{Kind: EventEnded}
}
