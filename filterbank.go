package cqt

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cqt/internal/parallel"
)

// computeFilterbank builds the dense [numBins x windowLength] filterbank: row
// k is the forward FFT of the complex Hann window centered at f_k.
//
// Rows are computed in parallel; each worker writes only its own row segment
// of the backing slice, so the result is independent of scheduling and worker
// count. The plan length equals the window length (a power of two by
// construction), so FFT execution cannot fail on validated params; a failure
// indicates a broken invariant and panics.
func computeFilterbank(params *Params, plan *algofft.Plan[complex128]) *mat.CDense {
	numBins := params.NumBins()
	windowLength := params.WindowLength()

	data := make([]complex128, numBins*windowLength)

	parallel.For(numBins, func(bin int) {
		row := data[bin*windowLength : (bin+1)*windowLength]
		kernel := ComplexHannWindow(params.CenterFreq(bin), params)

		if err := plan.Forward(row, kernel); err != nil {
			panic(fmt.Sprintf("cqt: filterbank FFT failed for bin %d: %v", bin, err))
		}
	})

	return mat.NewCDense(numBins, windowLength, data)
}
