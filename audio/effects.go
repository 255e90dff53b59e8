package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf, so zero is made silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateEatSound generates a rising two-note chirp
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, constants.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.EatSoundNote1Duration, constants.EatSoundAttack, constants.EatSoundNote1Release, rate)

	n2 := NewOscillator(880.0, constants.EatSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.EatSoundNote2Duration, constants.EatSoundAttack, constants.EatSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, 0.4*cfg.EffectVolumes[core.SoundEat]*cfg.MasterVolume)
}

// CreateCrashSound generates a low saw growl over noise
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	growl := NewOscillator(90.0, constants.CrashSoundDuration, WaveSaw, rate)
	growlShaped := NewEnvelope(growl, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	noise := NewOscillator(0, constants.CrashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(growlShaped, 0.6),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundCrash]*cfg.MasterVolume)
}

// CreateMoveSound generates a short soft tick
func CreateMoveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(220.0, constants.MoveSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate)

	return newVolume(shaped, 0.5*cfg.EffectVolumes[core.SoundMove]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh synthesized streamer for the cue
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundEat:
		return CreateEatSound(cfg)
	case core.SoundCrash:
		return CreateCrashSound(cfg)
	case core.SoundMove:
		return CreateMoveSound(cfg)
	default:
		return nil
	}
}

// MusicGenerator generates an endless soft kick-and-bass loop
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewMusicGenerator creates the synthesized background track
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:      sr,
		samples: sr.N(constants.MusicBeatDuration),
	}
}

// bassline cycles once per four beats
var bassline = [4]float64{110.0, 110.0, 130.81, 98.0}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(constants.MusicKickDuration)
	for i := range samples {
		beat := g.pos / g.samples
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.3 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		bass := 0.1 * math.Sin(2*math.Pi*bassline[beat%len(bassline)]*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }

// fader ramps gain from 1 to 0 over a fixed number of samples once started
type fader struct {
	streamer beep.Streamer
	length   int
	position int
	active   bool
}

func (f *fader) start(length int) {
	if length < 1 {
		length = 1
	}
	f.length = length
	f.position = 0
	f.active = true
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	if !f.active {
		return n, ok
	}
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.position)/float64(f.length)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		if f.position < f.length {
			f.position++
		}
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
