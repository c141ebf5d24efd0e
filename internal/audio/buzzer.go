package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/lcdwatch/alarm-face/internal/logger"
)

const (
	sampleRate = 44100
	channels   = 1
	// amplitude keeps the piezo-style tones well below full scale.
	amplitude = 0.25
)

// The audio device is opened once per process and shared by all buzzers.
var (
	//nolint:gochecknoglobals // Single audio context per process, as the device requires.
	globalCtx *oto.Context
	//nolint:gochecknoglobals // Guards the one-time device initialisation.
	globalCtxOnce sync.Once
	//nolint:gochecknoglobals // Remembers a failed initialisation.
	globalCtxErr error
)

// audioContext initialises the audio device on first use and waits until
// the hardware is ready.
func audioContext() (*oto.Context, error) {
	globalCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			globalCtxErr = err
			return
		}

		<-ready

		globalCtx = ctx
	})

	return globalCtx, globalCtxErr
}

// Buzzer synthesises notes on the system audio device. Playback is
// synchronous and finite: PlayNote returns when the tone finished, the
// rhythm of beep sequences depends on it.
type Buzzer struct{}

// New returns a buzzer backed by the system audio device. The device is
// opened lazily on the first note.
func New() *Buzzer {
	return &Buzzer{}
}

// PlayNote sounds freq hertz for the duration; a frequency of zero rests
// instead. When the audio device is unavailable the note degrades to a
// silent rest so beep timing stays intact.
func (b *Buzzer) PlayNote(freq float64, d time.Duration) {
	if freq <= 0 {
		time.Sleep(d)
		return
	}

	ctx, err := audioContext()
	if err != nil {
		logger.Logger().Warnw("Audio device unavailable", "error", err)
		time.Sleep(d)

		return
	}

	p := ctx.NewPlayer(bytes.NewReader(sineWave(freq, d)))
	p.Play()

	for p.IsPlaying() {
		time.Sleep(5 * time.Millisecond)
	}

	if err := p.Close(); err != nil {
		logger.Logger().Warnw("Failed to close audio player", "error", err)
	}
}

// sineWave renders the tone as 16-bit little-endian mono PCM.
func sineWave(freq float64, d time.Duration) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*2)

	for i := range n {
		v := int16(amplitude * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}

	return buf
}

// Silent is a Buzzer that keeps time without producing sound, for
// headless runs and the no-sound setting.
type Silent struct{}

// PlayNote rests for the duration of the note.
func (Silent) PlayNote(_ float64, d time.Duration) {
	time.Sleep(d)
}
