package main

import (
	"context"
	"flag"
	"os"

	"github.com/kassel/seatheat/internal/swatch"
)

const defaultGradientSteps = 64

func main() {
	var (
		prices   = flag.String("prices", "", "Comma-separated price list to preview")
		steps    = flag.Int("steps", defaultGradientSteps, "Width of the spectrum bar, in cells")
		logScale = flag.Bool("log-scale", true, "Apply log1p transform before batch statistics")
	)
	flag.Parse()

	batch, err := swatch.ParsePrices(*prices)
	if err != nil {
		os.Stderr.WriteString("invalid -prices: " + err.Error() + "\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg := &swatch.Config{
		Prices:        batch,
		GradientSteps: *steps,
		LogScale:      *logScale,
		Out:           os.Stdout,
	}
	if err := swatch.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("preview failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
