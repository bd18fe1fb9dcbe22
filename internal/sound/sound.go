// Package sound implements the console's synchronous sound driver
// contract: beep/tone/music-string calls that block the caller for the
// computed note duration, plus a fixed-point software synthesizer that
// renders the corresponding waveform samples for a host that wants real
// audio output.
package sound

import (
	"context"
	"time"
)

// Driver is the narrow external-collaborator interface the BASIC API
// facade drives SOUND/BEEP/PLAY through. Host applications may implement
// it against a real audio backend; Synth is the reference implementation.
type Driver interface {
	Beep(ctx context.Context) error
	PlayTone(ctx context.Context, freqHz int, durationMS int) error
	PlayMusicString(ctx context.Context, s string) error
}

// Sleeper is the minimal cooperative-wait primitive Synth needs from the
// scheduler: real time scaled by the current speed factor. Depending on
// the narrow interface here (rather than importing internal/scheduler
// directly) keeps sound decoupled from the scheduler's own types.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Sink receives rendered PCM samples for a host that wants to actually
// play audio, in addition to the blocking-duration contract every
// Driver call honors regardless of whether a Sink is installed.
type Sink interface {
	Write(samples []int16)
}

const sampleRate = 44100

// beepFreqHz and beepDurationMS approximate the classic PC-speaker BEEP
// statement: a single square-wave pip around 900 Hz for a quarter second.
const (
	beepFreqHz     = 900
	beepDurationMS = 250
)

// Synth is the reference Driver: a fixed-point square/sine/saw/noise
// oscillator bank that renders each tone's samples to an optional Sink,
// then blocks the caller for the tone's duration via Sleeper so BASIC
// program timing stays correct even without an attached audio backend.
type Synth struct {
	sleeper  Sleeper
	sink     Sink
	waveform Waveform
}

// NewSynth returns a Synth driving sleeper for timing and, if sink is
// non-nil, delivering rendered samples to it.
func NewSynth(sleeper Sleeper, sink Sink) *Synth {
	return &Synth{sleeper: sleeper, sink: sink, waveform: WaveSquare}
}

func (s *Synth) renderAndSleep(ctx context.Context, freqHz int, durationMS int) error {
	if durationMS <= 0 {
		return nil
	}
	if s.sink != nil && freqHz > 0 {
		n := sampleRate * durationMS / 1000
		s.sink.Write(render(sampleRate, s.waveform, float64(freqHz), n))
	}
	return s.sleeper.Sleep(ctx, time.Duration(durationMS)*time.Millisecond)
}

// Beep plays the fixed BEEP pip.
func (s *Synth) Beep(ctx context.Context) error {
	return s.renderAndSleep(ctx, beepFreqHz, beepDurationMS)
}

// PlayTone plays a single tone at freqHz for durationMS, per the SOUND
// statement. A non-positive frequency renders silence but still blocks
// for durationMS, since SOUND 0,dur is a valid rest in QBASIC dialects.
func (s *Synth) PlayTone(ctx context.Context, freqHz int, durationMS int) error {
	return s.renderAndSleep(ctx, freqHz, durationMS)
}

// PlayMusicString parses and plays s per the QBASIC PLAY grammar,
// blocking for the total duration of every note and rest in sequence.
func (s *Synth) PlayMusicString(ctx context.Context, musicStr string) error {
	notes, err := parsePlayString(musicStr)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.renderAndSleep(ctx, int(n.freqHz), n.durationMS); err != nil {
			return err
		}
	}
	return nil
}
