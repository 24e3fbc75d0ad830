package cqt

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-cqt/internal/testutil"
)

const (
	testMinFreq       = 20.0
	testMaxFreq       = 7902.1
	testBinsPerOctave = 12
	testSampleRate    = 44100
	testWindowLength  = 4096
)

func newTestParams(t *testing.T) *Params {
	t.Helper()

	params, err := NewParams(testMinFreq, testMaxFreq, testBinsPerOctave, testSampleRate, testWindowLength)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	return params
}

func TestNewParamsDerivedConstants(t *testing.T) {
	params := newTestParams(t)

	if got := params.NumBins(); got != 108 {
		t.Fatalf("NumBins = %d, want 108", got)
	}

	if got := params.WindowLength(); got != testWindowLength {
		t.Fatalf("WindowLength = %d, want %d (already a power of two)", got, testWindowLength)
	}

	wantQ := 1 / (math.Pow(2, 1.0/testBinsPerOctave) - 1)
	if got := params.QFactor(); got != wantQ {
		t.Fatalf("QFactor = %v, want %v", got, wantQ)
	}

	wantRatio := math.Pow(2, 1.0/testBinsPerOctave)
	if got := params.BaseFreqRatio(); got != wantRatio {
		t.Fatalf("BaseFreqRatio = %v, want %v", got, wantRatio)
	}
}

func TestNewParamsRoundsWindowLength(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{100, 128},
		{1024, 1024},
		{4000, 4096},
		{4097, 8192},
	}

	for _, tc := range cases {
		params, err := NewParams(testMinFreq, testMaxFreq, testBinsPerOctave, testSampleRate, tc.requested)
		if err != nil {
			t.Fatalf("NewParams(windowLength=%d): %v", tc.requested, err)
		}

		if got := params.WindowLength(); got != tc.want {
			t.Fatalf("windowLength %d rounded to %d, want %d", tc.requested, got, tc.want)
		}

		if len(params.HannWindow()) != tc.want || len(params.PhaseFactors()) != tc.want {
			t.Fatalf("windowLength %d: window/phase lengths %d/%d, want %d",
				tc.requested, len(params.HannWindow()), len(params.PhaseFactors()), tc.want)
		}
	}
}

func TestNewParamsCenterFreq(t *testing.T) {
	params := newTestParams(t)

	if got := params.CenterFreq(0); got != testMinFreq {
		t.Fatalf("CenterFreq(0) = %v, want %v", got, testMinFreq)
	}

	want := testMinFreq * math.Pow(2, 40.0/testBinsPerOctave)
	if got := params.CenterFreq(40); math.Abs(got-want) > 1e-9 {
		t.Fatalf("CenterFreq(40) = %v, want %v", got, want)
	}
}

func TestNewParamsPhaseFactors(t *testing.T) {
	params := newTestParams(t)
	phase := params.PhaseFactors()

	if len(phase) != testWindowLength {
		t.Fatalf("len = %d, want %d", len(phase), testWindowLength)
	}

	if phase[0] != 0 {
		t.Fatalf("phase[0] = %v, want 0", phase[0])
	}

	wantLast := -2 * math.Pi * float64(testWindowLength-1) / float64(testSampleRate)
	if got := phase[testWindowLength-1]; got != wantLast {
		t.Fatalf("phase[last] = %v, want %v", got, wantLast)
	}

	for n := 1; n < len(phase); n++ {
		if phase[n] >= phase[n-1] {
			t.Fatalf("phase[%d] = %v not strictly below phase[%d] = %v", n, phase[n], n-1, phase[n-1])
		}
	}
}

func TestNewParamsHannWindow(t *testing.T) {
	params := newTestParams(t)
	hann := params.HannWindow()

	if len(hann) != testWindowLength {
		t.Fatalf("len = %d, want %d", len(hann), testWindowLength)
	}

	testutil.RequireFinite(t, hann)

	for i, v := range hann {
		if v < 0 || v > 1 {
			t.Fatalf("hann[%d] = %v outside [0,1]", i, v)
		}
	}

	if hann[0] > 1e-12 {
		t.Fatalf("hann[0] = %v, want ~0", hann[0])
	}
}

func TestNewParamsNormFactor(t *testing.T) {
	params := newTestParams(t)

	want, err := calculateNorm(params.HannWindow())
	if err != nil {
		t.Fatalf("calculateNorm: %v", err)
	}

	if got := params.NormFactor(); got != want {
		t.Fatalf("NormFactor = %v, want %v", got, want)
	}

	if params.NormFactor() <= 0 {
		t.Fatalf("NormFactor = %v, want > 0", params.NormFactor())
	}
}

func TestNewParamsValidation(t *testing.T) {
	cases := []struct {
		name          string
		minFreq       float64
		maxFreq       float64
		binsPerOctave int
		sampleRate    int
		windowLength  int
		want          error
	}{
		{"negative min frequency", -10, testMaxFreq, testBinsPerOctave, testSampleRate, testWindowLength, ErrInvalidMinFrequency},
		{"zero min frequency", 0, testMaxFreq, testBinsPerOctave, testSampleRate, testWindowLength, ErrInvalidMinFrequency},
		{"max below min", testMinFreq, testMinFreq - 1, testBinsPerOctave, testSampleRate, testWindowLength, ErrInvalidMaxFrequency},
		{"max equals min", testMinFreq, testMinFreq, testBinsPerOctave, testSampleRate, testWindowLength, ErrInvalidMaxFrequency},
		{"zero bins per octave", testMinFreq, testMaxFreq, 0, testSampleRate, testWindowLength, ErrInvalidBinsPerOctave},
		{"zero sample rate", testMinFreq, testMaxFreq, testBinsPerOctave, 0, testWindowLength, ErrInvalidSampleRate},
		{"zero window length", testMinFreq, testMaxFreq, testBinsPerOctave, testSampleRate, 0, ErrInvalidWindowLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParams(tc.minFreq, tc.maxFreq, tc.binsPerOctave, tc.sampleRate, tc.windowLength)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCalculateNorm(t *testing.T) {
	cases := []struct {
		name   string
		window []float64
		want   float64
	}{
		{"constant half, length 2", testutil.DC(0.5, 2), 0.5},
		{"constant half, length 4", testutil.DC(0.5, 4), 0.5},
		{"triangle", []float64{0.25, 0.5, 0.25}, math.Sqrt(0.375 / 3)},
		{"impulse", []float64{0, 1, 0}, math.Sqrt(1.0 / 3)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calculateNorm(tc.window)
			if err != nil {
				t.Fatalf("calculateNorm: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-15 {
				t.Fatalf("calculateNorm = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateNormEmptyWindow(t *testing.T) {
	_, err := calculateNorm(nil)
	if !errors.Is(err, ErrInvalidWindowLength) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidWindowLength)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := [][2]int{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512}}
	for _, c := range cases {
		if got := nextPowerOf2(c[0]); got != c[1] {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}
