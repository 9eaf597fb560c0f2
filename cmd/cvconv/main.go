// Command cvconv applies a convolution kernel to an image file.
//
// Usage:
//
//	cvconv -in photo.png -out blurred.png -kernel gaussian -size 7 -sigma 1.5
//	cvconv -in photo.jpg -out edges.png -kernel sobel-x -gray -border replicate
//	cvconv -in photo.png -kernel box -size 9 -separable -workers -1 -bench 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cv"
	"github.com/gogpu/cv/imageio"
)

type config struct {
	in        string
	out       string
	kernel    string
	size      int
	sigma     float64
	border    string
	separable bool
	gray      bool
	workers   int
	bench     int
	quality   int
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	flag.StringVar(&cfg.out, "out", "", "output image (png, jpeg, bmp, tiff); empty skips writing")
	flag.StringVar(&cfg.kernel, "kernel", "gaussian", "box, gaussian, sobel-x, sobel-y, laplacian, laplacian8, sharpen, identity")
	flag.IntVar(&cfg.size, "size", 5, "kernel size for box, gaussian and identity (odd); 0 derives it from -sigma")
	flag.Float64Var(&cfg.sigma, "sigma", 1.0, "gaussian standard deviation")
	flag.StringVar(&cfg.border, "border", "reflect", "border mode: zero, replicate, reflect, wrap")
	flag.BoolVar(&cfg.separable, "separable", false, "use the two-pass path (box and gaussian only)")
	flag.BoolVar(&cfg.gray, "gray", false, "convert to a single channel before filtering")
	flag.IntVar(&cfg.workers, "workers", 0, "row bands per call: 0 sequential, -1 GOMAXPROCS")
	flag.IntVar(&cfg.bench, "bench", 0, "run N sequential and N parallel passes and report timings")
	flag.IntVar(&cfg.quality, "quality", imageio.DefaultJPEGQuality, "JPEG quality (1-100)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	flag.Parse()

	if cfg.verbose {
		cv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("cvconv: %v", err)
	}
}

func run(cfg config) error {
	if cfg.in == "" {
		return errors.New("-in is required")
	}

	mode, err := cv.ParseBorderMode(cfg.border)
	if err != nil {
		return err
	}

	channels := 0
	if cfg.gray {
		channels = 1
	}
	src, err := imageio.Load(cfg.in, channels)
	if err != nil {
		return err
	}

	op, err := newFilter(cfg)
	if err != nil {
		return err
	}

	engine := cv.NewEngine(workerOption(cfg.workers))
	dst, err := op(engine, src, mode)
	if err != nil {
		return err
	}

	if cfg.bench > 0 {
		if err := benchmark(cfg, op, src, mode); err != nil {
			return err
		}
	}

	if cfg.out == "" {
		return nil
	}
	if err := imageio.Save(cfg.out, dst, &imageio.Options{Quality: cfg.quality}); err != nil {
		return err
	}
	log.Printf("Saved %s (%dx%d, %d channels)", cfg.out, dst.Width(), dst.Height(), dst.Channels())
	return nil
}

// filterFunc runs one configured convolution on an engine.
type filterFunc func(e *cv.Engine, src *cv.PixelBuffer, mode cv.BorderMode) (*cv.PixelBuffer, error)

func newFilter(cfg config) (filterFunc, error) {
	size := cfg.size
	sigma := float32(cfg.sigma)
	if size == 0 {
		size = cv.GaussianSize(sigma)
	}

	if cfg.separable {
		var k1 []float32
		var err error
		switch cfg.kernel {
		case "box":
			k1, err = cv.BoxKernel1D(size)
		case "gaussian":
			k1, err = cv.GaussianKernel1D(size, sigma)
		default:
			return nil, fmt.Errorf("kernel %q has no separable form; use box or gaussian", cfg.kernel)
		}
		if err != nil {
			return nil, err
		}
		return func(e *cv.Engine, src *cv.PixelBuffer, mode cv.BorderMode) (*cv.PixelBuffer, error) {
			return e.ConvolveSeparable(src, k1, k1, mode)
		}, nil
	}

	var k *cv.Kernel
	var err error
	switch cfg.kernel {
	case "box":
		k, err = cv.BoxBlur(size)
	case "gaussian":
		k, err = cv.Gaussian(size, sigma)
	case "identity":
		k, err = cv.Identity(size)
	case "sobel-x":
		k = cv.SobelX()
	case "sobel-y":
		k = cv.SobelY()
	case "laplacian":
		k = cv.Laplacian()
	case "laplacian8":
		k = cv.Laplacian8()
	case "sharpen":
		k = cv.Sharpen()
	default:
		return nil, fmt.Errorf("unknown kernel %q", cfg.kernel)
	}
	if err != nil {
		return nil, err
	}
	return func(e *cv.Engine, src *cv.PixelBuffer, mode cv.BorderMode) (*cv.PixelBuffer, error) {
		return e.Convolve(src, k, mode)
	}, nil
}

func workerOption(n int) cv.Option {
	switch {
	case n < 0:
		return cv.WithAutoWorkers()
	case n == 0:
		return cv.Sequential()
	default:
		return cv.WithWorkers(n)
	}
}

// benchmark times sequential against parallel execution and checks that
// both produce the same bytes.
func benchmark(cfg config, op filterFunc, src *cv.PixelBuffer, mode cv.BorderMode) error {
	seq := cv.NewEngine(cv.Sequential())
	par := cv.NewEngine(cv.WithAutoWorkers())
	if cfg.workers > 0 {
		par = cv.NewEngine(cv.WithWorkers(cfg.workers))
	}

	seqOut, seqTime, err := timeRuns(seq, op, src, mode, cfg.bench)
	if err != nil {
		return err
	}
	parOut, parTime, err := timeRuns(par, op, src, mode, cfg.bench)
	if err != nil {
		return err
	}
	if !seqOut.Equal(parOut) {
		return errors.New("parallel output differs from sequential output")
	}

	p := message.NewPrinter(language.English)
	pixels := src.Width() * src.Height()
	p.Printf("%d pixels x %d channels, %d runs\n", pixels, src.Channels(), cfg.bench)
	p.Printf("sequential:      %v/run (%.0f px/s)\n", seqTime, float64(pixels)/seqTime.Seconds())
	p.Printf("parallel (%d): %v/run (%.0f px/s), speedup %.2fx\n",
		par.Workers(), parTime, float64(pixels)/parTime.Seconds(), seqTime.Seconds()/parTime.Seconds())
	return nil
}

func timeRuns(e *cv.Engine, op filterFunc, src *cv.PixelBuffer, mode cv.BorderMode, n int) (*cv.PixelBuffer, time.Duration, error) {
	var out *cv.PixelBuffer
	start := time.Now()
	for range n {
		var err error
		if out, err = op(e, src, mode); err != nil {
			return nil, 0, err
		}
	}
	return out, time.Since(start) / time.Duration(n), nil
}
