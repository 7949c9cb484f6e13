package sfx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadrash/pkg/sim"
)

func TestSynthLengths(t *testing.T) {
	tests := []struct {
		sound  Sound
		frames int
	}{
		{SoundPickup, 6615},
		{SoundCrash, 15435},
		{SoundGameOver, 52920},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			buf := Synth(tt.sound, SampleRate)
			require.Len(t, buf, tt.frames*4)

			loud := 0
			for i := 0; i < len(buf); i += 4 {
				l := int16(binary.LittleEndian.Uint16(buf[i:]))
				r := int16(binary.LittleEndian.Uint16(buf[i+2:]))
				require.Equal(t, l, r, "frame %d", i/4)
				if l > 1000 || l < -1000 {
					loud++
				}
			}
			assert.Positive(t, loud)
		})
	}
	assert.Nil(t, Synth(Sound(99), SampleRate))
}

func TestSynthIsDeterministic(t *testing.T) {
	assert.Equal(t, Synth(SoundCrash, SampleRate), Synth(SoundCrash, SampleRate))
}

func TestMutedBoard(t *testing.T) {
	b := NewBoard(true)
	assert.True(t, b.Muted())
	// no audio device is opened, so these must be no-ops
	b.Play(SoundPickup)
	b.React(sim.Events{Crashed: true, GameOver: true})
}
