package cqt

import "math"

// Precomputed lookup tables for quantities that are shared across many
// filterbank bins and across typical transform configurations. The tables are
// built once at package initialization and never modified afterwards; lookups
// for keys outside the precomputed range fall back to direct computation
// without inserting into the table. Hits and misses are bit-identical.

// maxTableBinsPerOctave bounds the precomputed binsPerOctave range 1..12,
// covering semitone resolution and everything coarser.
const maxTableBinsPerOctave = 12

var (
	precomputedWindowLengths = []int{256, 512, 1024, 2048, 4096}
	precomputedSampleRates   = []int{16000, 22050, 44100, 48000}
)

type phaseKey struct {
	windowLength int
	sampleRate   int
}

var (
	qFactorTable       = buildQFactorTable()
	baseFreqRatioTable = buildBaseFreqRatioTable()
	phaseFactorTable   = buildPhaseFactorTable()
)

func buildQFactorTable() map[int]float64 {
	table := make(map[int]float64, maxTableBinsPerOctave)
	for b := 1; b <= maxTableBinsPerOctave; b++ {
		table[b] = computeQFactor(b)
	}
	return table
}

func buildBaseFreqRatioTable() map[int]float64 {
	table := make(map[int]float64, maxTableBinsPerOctave)
	for b := 1; b <= maxTableBinsPerOctave; b++ {
		table[b] = computeBaseFreqRatio(b)
	}
	return table
}

func buildPhaseFactorTable() map[phaseKey][]float64 {
	table := make(map[phaseKey][]float64, len(precomputedWindowLengths)*len(precomputedSampleRates))
	for _, windowLength := range precomputedWindowLengths {
		for _, sampleRate := range precomputedSampleRates {
			key := phaseKey{windowLength: windowLength, sampleRate: sampleRate}
			table[key] = computePhaseFactors(windowLength, sampleRate)
		}
	}
	return table
}

// lookupQFactor returns the Q factor for the given bins per octave,
// precomputed where available.
func lookupQFactor(binsPerOctave int) float64 {
	if q, ok := qFactorTable[binsPerOctave]; ok {
		return q
	}
	return computeQFactor(binsPerOctave)
}

// lookupBaseFreqRatio returns r = 2^(1/B), precomputed where available.
func lookupBaseFreqRatio(binsPerOctave int) float64 {
	if r, ok := baseFreqRatioTable[binsPerOctave]; ok {
		return r
	}
	return computeBaseFreqRatio(binsPerOctave)
}

// lookupPhaseFactors returns the phase factor vector for the given window
// length and sample rate. Table hits return a copy so callers can never alias
// the shared table.
func lookupPhaseFactors(windowLength, sampleRate int) []float64 {
	if cached, ok := phaseFactorTable[phaseKey{windowLength: windowLength, sampleRate: sampleRate}]; ok {
		out := make([]float64, len(cached))
		copy(out, cached)
		return out
	}
	return computePhaseFactors(windowLength, sampleRate)
}

// computeQFactor computes Q = 1 / (2^(1/B) - 1).
//
// With r = 2^(1/B), the bandwidth of the bin centered at f is
// delta_f = f*(r-1), so Q = f/delta_f is the same for every bin.
func computeQFactor(binsPerOctave int) float64 {
	return 1 / (computeBaseFreqRatio(binsPerOctave) - 1)
}

// computeBaseFreqRatio computes r = 2^(1/B).
func computeBaseFreqRatio(binsPerOctave int) float64 {
	return math.Pow(2, 1/float64(binsPerOctave))
}

// computePhaseFactors computes phi(n) = -2*pi*n / sampleRate for n in
// [0, windowLength).
func computePhaseFactors(windowLength, sampleRate int) []float64 {
	out := make([]float64, windowLength)
	for n := range out {
		out[n] = -2 * math.Pi * float64(n) / float64(sampleRate)
	}
	return out
}
