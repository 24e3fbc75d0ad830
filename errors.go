package cqt

import "errors"

// Parameter validation errors returned by [NewParams]. Checks run in the
// order listed; the first failing check wins.
var (
	ErrInvalidMinFrequency  = errors.New("cqt: invalid minimum frequency: must be positive")
	ErrInvalidMaxFrequency  = errors.New("cqt: invalid maximum frequency: must be greater than the minimum frequency")
	ErrInvalidBinsPerOctave = errors.New("cqt: invalid bins per octave: must be a positive integer")
	ErrInvalidSampleRate    = errors.New("cqt: invalid sample rate: must be a positive integer")
	ErrInvalidWindowLength  = errors.New("cqt: invalid window length: must be a positive integer")
)

// Signal validation errors returned by [Transform.Process].
var (
	ErrEmptyInputSignal = errors.New("cqt: empty input signal")
	ErrInvalidHopSize   = errors.New("cqt: invalid hop size: must be greater than 0 and at most the window length")
)
