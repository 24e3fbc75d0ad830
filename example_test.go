package cqt_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-cqt"
)

func ExampleNewParams() {
	// Semitone resolution over the full piano range at 44.1 kHz.
	params, err := cqt.NewParams(20, 7902.1, 12, 44100, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Bins: %d\n", params.NumBins())
	fmt.Printf("Window length: %d\n", params.WindowLength())
	fmt.Printf("Q factor: %.2f\n", params.QFactor())
	fmt.Printf("Bin 12 center: %.0f Hz\n", params.CenterFreq(12))
	// Output:
	// Bins: 108
	// Window length: 4096
	// Q factor: 16.82
	// Bin 12 center: 40 Hz
}

func ExampleTransform_Process() {
	params, err := cqt.NewParams(20, 7902.1, 12, 44100, 4096)
	if err != nil {
		log.Fatal(err)
	}

	transform, err := cqt.New(params)
	if err != nil {
		log.Fatal(err)
	}

	signal := make([]float64, 1024) // two hops of silence
	features, err := transform.Process(signal, 512)
	if err != nil {
		log.Fatal(err)
	}

	frames, bins := features.Dims()
	fmt.Printf("%d frames x %d bins\n", frames, bins)
	// Output:
	// 2 frames x 108 bins
}
