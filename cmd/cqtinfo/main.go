// Command cqtinfo prints the derived parameters of a Constant-Q Transform
// configuration.
//
// Usage:
//
//	cqtinfo [flags]
//
// Examples:
//
//	cqtinfo
//	cqtinfo -min 32.7 -max 3951.1 -bins 24
//	cqtinfo -rate 48000 -window 2048 -table
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-cqt"
)

func main() {
	minFreq := flag.Float64("min", 20, "minimum frequency in Hz")
	maxFreq := flag.Float64("max", 7902.1, "maximum frequency in Hz")
	bins := flag.Int("bins", 12, "frequency bins per octave")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	windowLength := flag.Int("window", 4096, "analysis window length in samples (rounded up to a power of two)")
	table := flag.Bool("table", false, "print the per-bin center frequency table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cqtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the derived parameters of a Constant-Q Transform configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cqtinfo -min 32.7 -max 3951.1 -bins 24\n")
		fmt.Fprintf(os.Stderr, "  cqtinfo -rate 48000 -window 2048 -table\n")
	}
	flag.Parse()

	params, err := cqt.NewParams(*minFreq, *maxFreq, *bins, *rate, *windowLength)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Frequency range\t%.2f – %.2f Hz\n", params.MinFreq(), params.MaxFreq())
	fmt.Fprintf(w, "Bins per octave\t%d\n", params.BinsPerOctave())
	fmt.Fprintf(w, "Number of bins\t%d\n", params.NumBins())
	fmt.Fprintf(w, "Sample rate\t%d Hz\n", params.SampleRate())
	fmt.Fprintf(w, "Window length\t%d samples\n", params.WindowLength())
	fmt.Fprintf(w, "Base freq ratio\t%.6f\n", params.BaseFreqRatio())
	fmt.Fprintf(w, "Q factor\t%.4f\n", params.QFactor())
	fmt.Fprintf(w, "Norm factor\t%.6f\n", params.NormFactor())
	w.Flush()

	if !*table {
		return
	}

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Bin\tCenter (Hz)\tBandwidth (Hz)\t\n")
	for bin := 0; bin < params.NumBins(); bin++ {
		center := params.CenterFreq(bin)
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t\n", bin, center, center/params.QFactor())
	}
	tw.Flush()
}
