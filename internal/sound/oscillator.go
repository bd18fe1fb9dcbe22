package sound

// Waveform selects the oscillator shape used to render a tone's samples.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveSawtooth
	WaveNoise
)

// phaseMax mirrors the 32-bit phase-accumulator convention: phase wraps
// at 2^32, representing one full cycle (0 to 2*pi).
const phaseMax = uint32(0xFFFFFFFF)

// oscillator is a fixed-point phase-accumulator tone generator: the
// phase increment per sample is (frequency * 2^32) / sampleRate, and
// every waveform is derived from the upper bits of the running phase.
// Using integer phase arithmetic instead of floating accumulation avoids
// drift across a long note's sample count.
type oscillator struct {
	sampleRate int
	waveform   Waveform
	phase      uint32
	increment  uint32
	lfsr       uint16
}

func newOscillator(sampleRate int, waveform Waveform, freqHz float64) *oscillator {
	o := &oscillator{sampleRate: sampleRate, waveform: waveform, lfsr: 1}
	o.setFrequency(freqHz)
	return o
}

func (o *oscillator) setFrequency(freqHz float64) {
	if o.sampleRate == 0 || freqHz <= 0 {
		o.increment = 0
		return
	}
	o.increment = uint32((freqHz * 0x100000000) / float64(o.sampleRate))
}

// next returns the next sample as a signed 16-bit amplitude and advances
// the phase accumulator.
func (o *oscillator) next() int16 {
	var sample int32

	switch o.waveform {
	case WaveSine:
		sample = int32(sineApprox(uint16(o.phase >> 16)))
	case WaveSquare:
		if o.phase < phaseMax/2 {
			sample = 32767
		} else {
			sample = -32768
		}
	case WaveSawtooth:
		sample = int32(int64(o.phase>>16) - 32768)
	case WaveNoise:
		feedback := (o.lfsr & 1) ^ ((o.lfsr >> 14) & 1)
		o.lfsr = (o.lfsr >> 1) | (feedback << 14)
		if o.lfsr == 0 {
			o.lfsr = 1
		}
		if o.lfsr&1 != 0 {
			sample = 32767
		} else {
			sample = -32768
		}
	}

	o.phase += o.increment
	return int16(sample)
}

// sineApprox approximates sine from a 16-bit phase (0-65535 over one
// cycle) using a cubic polynomial, avoiding a lookup table.
func sineApprox(phase uint16) int16 {
	p := int32(phase)
	if p >= 32768 {
		p -= 65536
	}
	// Fold [-pi,pi) onto [-pi/2,pi/2], where p/16384 is x in [-1,1],
	// then evaluate sin(pi/2*x) ~= (3x - x^3)/2 in fixed point.
	if p > 16384 {
		p = 32768 - p
	} else if p < -16384 {
		p = -32768 - p
	}
	x2 := (p * p) >> 14
	result := (p * (3<<14 - x2)) >> 14
	if result > 32767 {
		result = 32767
	} else if result < -32768 {
		result = -32768
	}
	return int16(result)
}

// render fills n samples for the given frequency and waveform.
func render(sampleRate int, waveform Waveform, freqHz float64, n int) []int16 {
	osc := newOscillator(sampleRate, waveform, freqHz)
	out := make([]int16, n)
	for i := range out {
		out[i] = osc.next()
	}
	return out
}
