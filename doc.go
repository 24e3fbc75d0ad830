// Package cqt implements the Constant-Q Transform (CQT) for time-frequency
// analysis of audio signals.
//
// Unlike the short-time Fourier transform, which spaces its frequency bins
// linearly, the CQT spaces them logarithmically so that the ratio of each
// bin's center frequency to its bandwidth (the quality factor Q) is the same
// for every bin. This matches musical pitch spacing, where each octave doubles
// in frequency, and makes the transform well suited for chroma extraction,
// pitch detection and onset analysis.
//
// The bin layout follows from three quantities:
//
//	r = 2^(1/B)                   (base frequency ratio, B bins per octave)
//	Q = 1 / (r - 1)               (quality factor, constant across bins)
//	f_k = f_min * r^k             (center frequency of bin k)
//	K = B * ceil(log2(f_max/f_min))  (number of bins)
//
// Analysis works in two stages. [NewParams] derives all per-transform
// constants and [New] builds a filterbank of one frequency-domain kernel per
// bin:
//
//	W_k(n) = FFT( exp(j * phi(n) * f_k) * Q * hann(n) * norm )
//	phi(n) = -2*pi*n / sampleRate
//
// [Transform.Process] then frames the input signal, applies the shared Hann
// window, transforms each frame and projects the frame spectra onto the
// filterbank, returning the magnitude of each projection as a
// [frames x bins] feature matrix.
//
// Basic usage:
//
//	params, err := cqt.NewParams(20, 7902.1, 12, 44100, 4096)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := cqt.New(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	features, err := t.Process(signal, 512)
//	// features.At(frame, bin) is the CQT magnitude of bin at frame.
//
// A Transform is immutable once built and safe for concurrent Process calls.
package cqt
