// Package sfx synthesises and plays the pickup, crash and game-over effects.
package sfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/log"
	"github.com/golangdaddy/roadrash/pkg/sim"
)

const SampleRate = 44100

// Sound identifies an effect.
type Sound int

const (
	SoundPickup Sound = iota
	SoundCrash
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundCrash:
		return "crash"
	case SoundGameOver:
		return "game-over"
	}
	return "unknown"
}

// Board plays effects in response to simulation events.
type Board struct {
	ctx    *audio.Context
	clips  map[Sound][]byte
	volume float64
	muted  bool
}

// NewBoard synthesises every effect. A muted board never touches the audio
// device.
func NewBoard(muted bool) *Board {
	b := &Board{
		clips:  make(map[Sound][]byte),
		volume: 0.5,
		muted:  muted,
	}
	if muted {
		log.Info("sound muted")
		return b
	}
	b.ctx = audio.CurrentContext()
	if b.ctx == nil {
		b.ctx = audio.NewContext(SampleRate)
	}
	for _, s := range []Sound{SoundPickup, SoundCrash, SoundGameOver} {
		b.clips[s] = Synth(s, b.ctx.SampleRate())
	}
	return b
}

// Muted reports whether Play is a no-op.
func (b *Board) Muted() bool {
	return b.muted
}

// Play starts sound s without waiting for it to finish.
func (b *Board) Play(s Sound) {
	if b.muted || b.ctx == nil {
		return
	}
	clip, ok := b.clips[s]
	if !ok {
		log.Warn("no clip for sound", zap.Stringer("sound", s))
		return
	}
	p := b.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(b.volume)
	p.Play()
}

// React plays the effects for one tick's events.
func (b *Board) React(ev sim.Events) {
	switch {
	case ev.GameOver:
		b.Play(SoundGameOver)
	case ev.Crashed:
		b.Play(SoundCrash)
	case ev.Collected:
		b.Play(SoundPickup)
	}
}

// Synth renders sound s as 16-bit little endian stereo PCM.
func Synth(s Sound, sampleRate int) []byte {
	var (
		ms   int
		wave func(t, p float64) float64 // t seconds, p progress in [0,1]
	)
	noise := newNoise(uint32(s) + 1)
	switch s {
	case SoundPickup:
		ms = 150
		wave = func(t, p float64) float64 {
			f := 600 + 900*p
			return square(t*f) * (1 - p) * 0.5
		}
	case SoundCrash:
		ms = 350
		wave = func(t, p float64) float64 {
			thump := math.Sin(2*math.Pi*t*(90-50*p)) * (1 - p)
			return (0.6*noise.next()*(1-p)*(1-p) + 0.4*thump)
		}
	case SoundGameOver:
		ms = 1200
		wave = func(t, p float64) float64 {
			f := 440 * math.Pow(0.5, p*1.5)
			return math.Sin(2*math.Pi*t*f) * (1 - p) * 0.6
		}
	default:
		return nil
	}

	frames := sampleRate * ms / 1000
	buf := make([]byte, frames*4)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		p := float64(i) / float64(frames)
		putStereo16(buf, i, wave(t, p))
	}
	return buf
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// putStereo16 writes a [-1,1] sample to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	v := uint16(int16(sample * math.MaxInt16))
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// noise is a small xorshift generator so each effect sounds the same every run.
type noise struct{ state uint32 }

func newNoise(seed uint32) *noise { return &noise{state: seed * 2654435761} }

func (n *noise) next() float64 {
	n.state ^= n.state << 13
	n.state ^= n.state >> 17
	n.state ^= n.state << 5
	return float64(n.state)/float64(math.MaxUint32)*2 - 1
}
