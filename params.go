package cqt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Params holds the derived constants of a Constant-Q Transform: the bin
// layout, the shared analysis window and the per-sample phase factors.
// A Params value is immutable after construction.
type Params struct {
	minFreq       float64
	maxFreq       float64
	binsPerOctave int
	sampleRate    int
	windowLength  int

	numBins       int
	baseFreqRatio float64
	qFactor       float64
	normFactor    float64
	hannWindow    []float64
	phaseFactors  []float64
}

// NewParams validates the transform inputs and derives all constants needed
// to build a filterbank.
//
// minFreq and maxFreq bound the analyzed frequency range in Hz,
// binsPerOctave controls the frequency resolution, sampleRate is the audio
// sample rate in Hz and windowLength is the analysis frame length in samples.
// windowLength is rounded up to the next power of two for FFT efficiency;
// the stored value is reported by [Params.WindowLength].
func NewParams(minFreq, maxFreq float64, binsPerOctave, sampleRate, windowLength int) (*Params, error) {
	switch {
	case minFreq <= 0:
		return nil, ErrInvalidMinFrequency
	case maxFreq <= minFreq:
		return nil, ErrInvalidMaxFrequency
	case binsPerOctave <= 0:
		return nil, ErrInvalidBinsPerOctave
	case sampleRate <= 0:
		return nil, ErrInvalidSampleRate
	case windowLength <= 0:
		return nil, ErrInvalidWindowLength
	}

	windowLength = nextPowerOf2(windowLength)

	// K = B * ceil(log2(f_max / f_min)), whole octaves worth of bins.
	numBins := int(float64(binsPerOctave) * math.Ceil(math.Log2(maxFreq/minFreq)))

	hannWindow, err := window.Hann(windowLength)
	if err != nil {
		return nil, fmt.Errorf("cqt: generate Hann window: %w", err)
	}

	normFactor, err := calculateNorm(hannWindow)
	if err != nil {
		return nil, err
	}

	return &Params{
		minFreq:       minFreq,
		maxFreq:       maxFreq,
		binsPerOctave: binsPerOctave,
		sampleRate:    sampleRate,
		windowLength:  windowLength,
		numBins:       numBins,
		baseFreqRatio: lookupBaseFreqRatio(binsPerOctave),
		qFactor:       lookupQFactor(binsPerOctave),
		normFactor:    normFactor,
		hannWindow:    hannWindow,
		phaseFactors:  lookupPhaseFactors(windowLength, sampleRate),
	}, nil
}

// calculateNorm computes the window normalization factor
// sqrt(sum(w[n]^2) / N).
func calculateNorm(hannWindow []float64) (float64, error) {
	if len(hannWindow) == 0 {
		return 0, ErrInvalidWindowLength
	}

	squares := make([]float64, len(hannWindow))
	vecmath.MulBlock(squares, hannWindow, hannWindow)

	sum := 0.0
	for _, v := range squares {
		sum += v
	}

	return math.Sqrt(sum / float64(len(hannWindow))), nil
}

// MinFreq returns the minimum analyzed frequency in Hz.
func (p *Params) MinFreq() float64 { return p.minFreq }

// MaxFreq returns the maximum analyzed frequency in Hz.
func (p *Params) MaxFreq() float64 { return p.maxFreq }

// BinsPerOctave returns the number of bins covering one octave.
func (p *Params) BinsPerOctave() int { return p.binsPerOctave }

// SampleRate returns the audio sample rate in Hz.
func (p *Params) SampleRate() int { return p.sampleRate }

// WindowLength returns the analysis window length in samples, rounded up to a
// power of two at construction.
func (p *Params) WindowLength() int { return p.windowLength }

// NumBins returns the number of frequency bins in the filterbank.
func (p *Params) NumBins() int { return p.numBins }

// BaseFreqRatio returns r = 2^(1/B), the frequency ratio between adjacent bins.
func (p *Params) BaseFreqRatio() float64 { return p.baseFreqRatio }

// QFactor returns the constant quality factor Q = 1/(r-1).
func (p *Params) QFactor() float64 { return p.qFactor }

// NormFactor returns the window normalization factor sqrt(sum(w^2)/N).
func (p *Params) NormFactor() float64 { return p.normFactor }

// CenterFreq returns the center frequency of the given bin,
// f_k = f_min * r^k.
func (p *Params) CenterFreq(bin int) float64 {
	return p.minFreq * math.Pow(p.baseFreqRatio, float64(bin))
}

// HannWindow returns the shared analysis window coefficients. The returned
// slice is owned by p and must not be modified.
func (p *Params) HannWindow() []float64 { return p.hannWindow }

// PhaseFactors returns phi(n) = -2*pi*n/sampleRate for each window sample.
// The returned slice is owned by p and must not be modified.
func (p *Params) PhaseFactors() []float64 { return p.phaseFactors }

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
