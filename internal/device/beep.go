package device

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	eventBufferSize = 16
	tickInterval    = 500 * time.Millisecond
)

var speakerInitialized bool

// Beep plays local audio files through the speaker.
// It implements Device; format support is mp3, flac, wav and ogg.
type Beep struct {
	mu       sync.Mutex
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	file     *os.File
	level    float64

	events chan Event
	quit   chan struct{}
	once   sync.Once
}

var _ Device = (*Beep)(nil)

// NewBeep creates a beep-backed device.
func NewBeep() *Beep {
	b := &Beep{
		level:  1,
		events: make(chan Event, eventBufferSize),
		quit:   make(chan struct{}),
	}
	go b.tickLoop()
	return b
}

// Load attaches a file and leaves it paused at position 0.
func (b *Beep) Load(uri string) error {
	b.Unload()

	ext := strings.ToLower(filepath.Ext(uri))
	f, err := os.Open(uri)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	b.mu.Lock()
	b.file = f
	b.streamer = streamer
	b.format = format
	b.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	b.volume = &effects.Volume{
		Streamer: b.ctrl,
		Base:     2,
		Volume:   levelToVolume(b.level),
		Silent:   b.level <= 0,
	}
	vol := b.volume
	b.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		b.send(Event{Kind: EventEnded})
	})))
	return nil
}

// Play resumes the loaded resource. Settles immediately unless a
// newer command has already superseded it.
func (b *Beep) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return context.Cause(ctx)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return nil
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause suspends playback.
func (b *Beep) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return nil
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// SeekTo moves the playhead to an absolute position in seconds,
// clamped to the resource length.
func (b *Beep) SeekTo(seconds float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return
	}
	pos := b.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos = max(0, min(pos, b.streamer.Len()-1))
	speaker.Lock()
	_ = b.streamer.Seek(pos)
	speaker.Unlock()
}

// SetVolume applies an effective volume in [0,1].
func (b *Beep) SetVolume(v float64) {
	v = math.Max(0, math.Min(1, v))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = v
	if b.volume == nil {
		return
	}
	speaker.Lock()
	b.volume.Volume = levelToVolume(v)
	b.volume.Silent = v <= 0
	speaker.Unlock()
}

// Unload detaches the current resource.
func (b *Beep) Unload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return
	}
	speaker.Clear()
	b.streamer.Close()
	b.streamer = nil
	if b.file != nil {
		b.file.Close()
		b.file = nil
	}
	b.ctrl = nil
	b.volume = nil
}

// Position returns the playhead position in seconds.
func (b *Beep) Position() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := b.format.SampleRate.D(b.streamer.Position())
	speaker.Unlock()
	return pos.Seconds()
}

// Duration returns the resource length in seconds, 0 when unloaded.
func (b *Beep) Duration() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return 0
	}
	return b.format.SampleRate.D(b.streamer.Len()).Seconds()
}

// Events delivers timeUpdate and ended events.
func (b *Beep) Events() <-chan Event {
	return b.events
}

// Close detaches the resource and stops event delivery.
func (b *Beep) Close() error {
	b.once.Do(func() {
		close(b.quit)
		b.Unload()
		close(b.events)
	})
	return nil
}

func (b *Beep) tickLoop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-b.quit:
			return
		case <-ticker.C:
			b.mu.Lock()
			playing := b.ctrl != nil && !b.ctrl.Paused
			b.mu.Unlock()
			if playing {
				b.send(Event{
					Kind:     EventTimeUpdate,
					Position: b.Position(),
					Duration: b.Duration(),
				})
			}
		}
	}
}

// send delivers an event without blocking, dropping it if the buffer
// is full.
func (b *Beep) send(e Event) {
	select {
	case <-b.quit:
	case b.events <- e:
	default:
	}
}

// levelToVolume converts a 0..1 level to beep's logarithmic volume.
// 1.0 -> 0 (unchanged), 0.5 -> -1 (half), 0 -> silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
