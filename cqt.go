package cqt

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cqt/internal/parallel"
)

// Transform is a Constant-Q Transform analyzer. It owns the derived
// parameters and the precomputed filterbank, both immutable after [New], so a
// single Transform supports unlimited concurrent [Transform.Process] calls.
type Transform struct {
	params     *Params
	filterbank *mat.CDense
	plan       *algofft.Plan[complex128]
}

// New builds a Transform for the given parameters, including the full
// filterbank (one FFT of length WindowLength per bin).
func New(params *Params) (*Transform, error) {
	plan, err := algofft.NewPlan64(params.WindowLength())
	if err != nil {
		return nil, fmt.Errorf("cqt: create FFT plan: %w", err)
	}

	return &Transform{
		params:     params,
		filterbank: computeFilterbank(params, plan),
		plan:       plan,
	}, nil
}

// Params returns the transform parameters.
func (t *Transform) Params() *Params { return t.params }

// FilterbankDims returns the filterbank shape as (bins, windowLength).
func (t *Transform) FilterbankDims() (bins, windowLength int) {
	return t.filterbank.Dims()
}

// Process computes the CQT feature matrix of signal.
//
// The signal is zero-padded symmetrically by windowLength-hopSize samples,
// split into len(signal)/hopSize frames (a trailing partial frame shorter
// than one hop is dropped), windowed, transformed and projected onto the
// filterbank. The result is a fresh [frames x bins] magnitude matrix; it
// shares no storage with the Transform.
//
// Process returns [ErrEmptyInputSignal] for an empty signal and
// [ErrInvalidHopSize] when hopSize is zero or exceeds the window length.
// A non-empty signal shorter than one hop contains no full frame and yields
// an empty (0x0) matrix with a nil error.
func (t *Transform) Process(signal []float64, hopSize int) (*mat.Dense, error) {
	windowLength := t.params.WindowLength()

	if len(signal) == 0 {
		return nil, ErrEmptyInputSignal
	}

	if hopSize == 0 || hopSize > windowLength {
		return nil, ErrInvalidHopSize
	}

	numFrames := len(signal) / hopSize
	if numFrames == 0 {
		// Fewer samples than one hop: no full frame to analyze.
		return &mat.Dense{}, nil
	}

	padded := padSignal(signal, windowLength, hopSize)
	hann := t.params.hannWindow

	// Window and transform every frame into its own row of the frame matrix.
	data := make([]complex128, numFrames*windowLength)

	parallel.For(numFrames, func(frame int) {
		row := data[frame*windowLength : (frame+1)*windowLength]
		start := frame * hopSize

		windowed := make([]float64, windowLength)
		vecmath.MulBlock(windowed, padded[start:start+windowLength], hann)

		for i, v := range windowed {
			row[i] = complex(v, 0)
		}

		if err := t.plan.Forward(row, row); err != nil {
			panic(fmt.Sprintf("cqt: frame FFT failed for frame %d: %v", frame, err))
		}
	})

	frames := mat.NewCDense(numFrames, windowLength, data)

	// Project the frame spectra onto the transposed filterbank:
	// [frames x window] * [window x bins] -> [frames x bins].
	projected := mat.NewCDense(numFrames, t.params.NumBins(), nil)
	cblas128.Gemm(blas.NoTrans, blas.Trans, 1,
		frames.RawCMatrix(), t.filterbank.RawCMatrix(), 0, projected.RawCMatrix())

	return magnitudeMatrix(projected), nil
}

// magnitudeMatrix returns the elementwise complex modulus of m as a real
// matrix.
func magnitudeMatrix(m *mat.CDense) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)

	re := make([]float64, cols)
	im := make([]float64, cols)
	dst := make([]float64, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			re[j] = real(v)
			im[j] = imag(v)
		}

		vecmath.Magnitude(dst, re, im)
		out.SetRow(i, dst)
	}

	return out
}

// padSignal zero-pads signal symmetrically by windowLength-hopSize samples
// in total. The left side receives half the padding (rounded down), so the
// right side carries the extra sample when the total is odd.
func padSignal(signal []float64, windowLength, hopSize int) []float64 {
	padding := windowLength - hopSize
	left := padding / 2

	padded := make([]float64, len(signal)+padding)
	copy(padded[left:], signal)

	return padded
}
