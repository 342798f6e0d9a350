package beepout

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Tone describes a single enveloped note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Delay    time.Duration // silence before the note starts
	Gain     float64       // relative to the player volume
}

// Patches maps cues to the notes that make them up.
var Patches = map[core.Cue][]Tone{
	core.CueJump:  {{Freq: 220, Duration: 100 * time.Millisecond, Wave: WaveSaw, Gain: 1}},
	core.CueCoin:  {{Freq: 523, Duration: 150 * time.Millisecond, Wave: WaveSine, Gain: 1}},
	core.CueStomp: {{Freq: 110, Duration: 100 * time.Millisecond, Wave: WaveSquare, Gain: 1}},
	core.CueEat:   {{Freq: 660, Duration: 80 * time.Millisecond, Wave: WaveSine, Gain: 1}},
	core.CueLevelUp: {
		{Freq: 523, Duration: 90 * time.Millisecond, Wave: WaveSquare, Gain: 0.6},
		{Freq: 784, Duration: 120 * time.Millisecond, Wave: WaveSquare, Delay: 90 * time.Millisecond, Gain: 0.6},
	},
	core.CuePowerUp:  chord(300*time.Millisecond, 262, 330, 392),
	core.CueGameOver: chord(500*time.Millisecond, 147, 165, 185),
}

// chord staggers sine notes 50ms apart at half gain.
func chord(d time.Duration, freqs ...float64) []Tone {
	tones := make([]Tone, len(freqs))
	for i, f := range freqs {
		tones[i] = Tone{
			Freq:     f,
			Duration: d,
			Wave:     WaveSine,
			Delay:    time.Duration(i) * 50 * time.Millisecond,
			Gain:     0.5,
		}
	}
	return tones
}

// Synth builds a finite streamer for cue at the given volume.
// Unknown cues return nil.
func Synth(cue core.Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := Patches[cue]
	if !ok || len(tones) == 0 {
		return nil
	}

	voices := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = newEnvelope(newOscillator(t.Freq, t.Duration, t.Wave, sr), t.Duration, 10*time.Millisecond, sr)
		if t.Delay > 0 {
			s = beep.Seq(beep.Silence(sr.N(t.Delay)), s)
		}
		voices = append(voices, newVolume(s, t.Gain*volume))
	}
	if len(voices) == 1 {
		return voices[0]
	}
	return beep.Mix(voices...)
}

// oscillator generates a raw fixed-length wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, sr beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, duration: sr.N(d), wave: wave, rate: sr}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps in linearly over attack, then decays exponentially to 1%
// at the end of the note.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack time.Duration, sr beep.SampleRate) *envelope {
	return &envelope{streamer: s, attack: sr.N(attack), total: sr.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gainAt(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) gainAt(pos int) float64 {
	if pos < e.attack && e.attack > 0 {
		return float64(pos) / float64(e.attack)
	}
	decay := e.total - e.attack
	if decay <= 0 {
		return 1
	}
	progress := float64(pos-e.attack) / float64(decay)
	return math.Pow(0.01, math.Min(progress, 1))
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
