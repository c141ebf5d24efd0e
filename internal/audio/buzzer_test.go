package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSineWave checks the PCM buffer size and that samples stay within
// the reduced amplitude.
func TestSineWave(t *testing.T) {
	t.Parallel()

	d := 50 * time.Millisecond
	buf := sineWave(1975.53, d)

	wantSamples := int(float64(sampleRate) * d.Seconds())
	require.Len(t, buf, wantSamples*2)

	limit := int16(amplitude*32767) + 1
	for i := 0; i < len(buf); i += 2 {
		v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
		require.LessOrEqual(t, v, limit)
		require.GreaterOrEqual(t, v, -limit)
	}
}

// TestSilentKeepsTime ensures the silent buzzer still takes the note's
// duration, preserving beep rhythm.
func TestSilentKeepsTime(t *testing.T) {
	t.Parallel()

	start := time.Now()
	Silent{}.PlayNote(0, 20*time.Millisecond)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
