package cqt

import "math/cmplx"

// ComplexHannWindow builds the time-domain analysis kernel for one filterbank
// bin:
//
//	W(n) = exp(j * phi(n) * centerFreq) * Q * hann(n) * norm
//
// where phi(n) = -2*pi*n/sampleRate. The result has length
// params.WindowLength(). Each call is independent and side-effect free; the
// filterbank builder runs it for all bins in parallel.
func ComplexHannWindow(centerFreq float64, params *Params) []complex128 {
	qFactor := params.qFactor
	norm := params.normFactor
	hann := params.hannWindow
	phase := params.phaseFactors

	out := make([]complex128, params.windowLength)
	for n := range out {
		complexExp := cmplx.Exp(complex(0, phase[n]*centerFreq))
		out[n] = complexExp * complex(qFactor*hann[n]*norm, 0)
	}

	return out
}
