package sound

import (
	"fmt"
	"math"
)

// noteEvent is one parsed PLAY-string element: a frequency (0 for a
// rest) and a duration in milliseconds.
type noteEvent struct {
	freqHz     float64
	durationMS int
}

var naturalSemitone = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// parsePlayString parses the QBASIC PLAY subset described in spec.md §6:
// T<bpm>, L<denom>, O<octave>, '<', '>', P<len>[.]/R<len>[.], and notes
// A-G[#|+|-][len][.]. Quarter-note duration is 60000/bpm ms; a note's
// length denominator d scales that to 4/d of a quarter, and a trailing
// dot multiplies by 1.5. Pitch follows MIDI numbering: midi =
// 12*(octave+1)+semitone, freq = 440*2^((midi-69)/12), clamped to
// [37,32767] Hz.
func parsePlayString(s string) ([]noteEvent, error) {
	const (
		defaultBPM    = 120
		defaultOctave = 4
		defaultDenom  = 4
	)

	bpm, octave, lenDenom := defaultBPM, defaultOctave, defaultDenom
	var events []noteEvent

	quarterMS := func() float64 { return 60000.0 / float64(bpm) }
	durationFor := func(denom int, dotted bool) (int, error) {
		if denom <= 0 {
			return 0, fmt.Errorf("sound: PLAY: invalid length denominator %d", denom)
		}
		ms := quarterMS() * 4.0 / float64(denom)
		if dotted {
			ms *= 1.5
		}
		return int(ms + 0.5), nil
	}

	i, n := 0, len(s)
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == ',' || c == '\t':
			i++

		case c == 'T' || c == 't':
			v, ok, next := readInt(s, i+1)
			if !ok {
				return nil, fmt.Errorf("sound: PLAY: expected tempo number after T at %d", i)
			}
			bpm, i = v, next

		case c == 'L' || c == 'l':
			v, ok, next := readInt(s, i+1)
			if !ok {
				return nil, fmt.Errorf("sound: PLAY: expected length number after L at %d", i)
			}
			lenDenom, i = v, next

		case c == 'O' || c == 'o':
			v, ok, next := readInt(s, i+1)
			if !ok {
				return nil, fmt.Errorf("sound: PLAY: expected octave number after O at %d", i)
			}
			octave, i = v, next

		case c == '<':
			octave--
			i++

		case c == '>':
			octave++
			i++

		case c == 'P' || c == 'p' || c == 'R' || c == 'r':
			denom, has, next := readInt(s, i+1)
			i = next
			if !has {
				denom = lenDenom
			}
			dotted := i < n && s[i] == '.'
			if dotted {
				i++
			}
			dur, err := durationFor(denom, dotted)
			if err != nil {
				return nil, err
			}
			events = append(events, noteEvent{freqHz: 0, durationMS: dur})

		case (c >= 'A' && c <= 'G') || (c >= 'a' && c <= 'g'):
			letter := c
			if letter >= 'a' {
				letter -= 'a' - 'A'
			}
			semitone := naturalSemitone[letter]
			i++
			for i < n && (s[i] == '#' || s[i] == '+' || s[i] == '-') {
				if s[i] == '-' {
					semitone--
				} else {
					semitone++
				}
				i++
			}

			denom, has, next := readInt(s, i)
			i = next
			if !has {
				denom = lenDenom
			}
			dotted := i < n && s[i] == '.'
			if dotted {
				i++
			}
			dur, err := durationFor(denom, dotted)
			if err != nil {
				return nil, err
			}

			midi := 12*(octave+1) + semitone
			freq := 440.0 * math.Pow(2, float64(midi-69)/12.0)
			if freq < 37 {
				freq = 37
			} else if freq > 32767 {
				freq = 32767
			}
			events = append(events, noteEvent{freqHz: freq, durationMS: dur})

		default:
			return nil, fmt.Errorf("sound: PLAY: unexpected character %q at %d", c, i)
		}
	}

	return events, nil
}

// readInt scans consecutive ASCII digits starting at i, returning the
// parsed value, whether any digit was found, and the index past them.
func readInt(s string, i int) (value int, ok bool, next int) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	return value, i > start, i
}
