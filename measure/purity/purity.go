// Package purity measures the spectral purity of periodic approximation
// kernels.
//
// A kernel such as SinFull is sampled as an oscillator over a whole number
// of cycles, Hann-windowed and transformed. Approximation error shows up as
// energy at the harmonics of the fundamental, which is summarized as total
// harmonic distortion.
package purity

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	fastapprox "github.com/cwbudde/algo-fastapprox"
)

const (
	defaultFFTSize      = 4096
	defaultCycles       = 16
	defaultMaxHarmonics = 10
	hannCaptureBins     = 2
	minFFTSize          = 16
)

var (
	// ErrFFTSize is returned for an FFT size that is not a power of two of
	// at least 16.
	ErrFFTSize = errors.New("purity: FFT size must be a power of two >= 16")
	// ErrCycles is returned when the cycle count is negative or places the
	// second harmonic above Nyquist.
	ErrCycles = errors.New("purity: invalid cycle count")
)

// Config holds analysis parameters. Zero values select the defaults.
type Config struct {
	// FFTSize is the number of samples and the transform length (4096).
	FFTSize int
	// Cycles is the number of oscillator periods in the frame (16). It is
	// also the bin of the fundamental.
	Cycles int
	// MaxHarmonics limits the harmonics evaluated, starting at 2 (10).
	MaxHarmonics int
	// CaptureBins is the half-width of the bin group summed per peak (2,
	// the Hann main lobe).
	CaptureBins int
}

// Result holds purity measurement results. Ratios are relative to the
// fundamental amplitude.
type Result struct {
	FundamentalBin   int
	FundamentalLevel float64
	Harmonics        []float64
	THD              float64
	THDdB            float64
	THDN             float64
	SINAD            float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}
	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}
	if cfg.CaptureBins <= 0 {
		cfg.CaptureBins = hannCaptureBins
	}
	return cfg
}

func validate(cfg Config) error {
	if cfg.FFTSize < minFFTSize || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return fmt.Errorf("%w: %d", ErrFFTSize, cfg.FFTSize)
	}
	if cfg.Cycles < 1 || 2*cfg.Cycles > cfg.FFTSize/2 {
		return fmt.Errorf("%w: %d cycles in %d samples", ErrCycles, cfg.Cycles, cfg.FFTSize)
	}
	return nil
}

// Oscillator samples fn at x = 2π·cycles·i/n for i in [0, n).
func Oscillator(fn fastapprox.Func, n, cycles int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(cycles) / float64(n)
	for i := range out {
		out[i] = float64(fn(float32(step * float64(i))))
	}
	return out
}

// Analyze samples fn as an oscillator and measures its harmonic distortion.
func Analyze(fn fastapprox.Func, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)
	if err := validate(cfg); err != nil {
		return Result{}, err
	}
	return AnalyzeSignal(Oscillator(fn, cfg.FFTSize, cfg.Cycles), cfg)
}

// AnalyzeSignal measures a signal of cfg.FFTSize samples holding cfg.Cycles
// periods of a fundamental.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)
	if err := validate(cfg); err != nil {
		return Result{}, err
	}
	if len(signal) != cfg.FFTSize {
		return Result{}, fmt.Errorf("%w: signal has %d samples", ErrFFTSize, len(signal))
	}

	windowed := make([]float64, len(signal))
	copy(windowed, signal)
	vecmath.MulBlockInPlace(windowed, hann(len(signal)))

	in := make([]complex128, cfg.FFTSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return Result{}, fmt.Errorf("purity: fft plan: %w", err)
	}
	out := make([]complex128, cfg.FFTSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("purity: fft: %w", err)
	}

	binCount := cfg.FFTSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	magSquared := make([]float64, binCount)
	vecmath.Power(magSquared, re, im)

	return fromMagnitude(magSquared, cfg), nil
}

func fromMagnitude(magSquared []float64, cfg Config) Result {
	maxBin := len(magSquared) - 1
	fundamentalBin := cfg.Cycles

	captureBins := cfg.CaptureBins
	if captureBins*2 > fundamentalBin {
		captureBins = fundamentalBin / 2
	}

	fundamentalLevel := binValue(magSquared, fundamentalBin, captureBins)
	if fundamentalLevel <= 0 {
		return Result{FundamentalBin: fundamentalBin}
	}

	thdAbs := 0.0
	harmonics := make([]float64, 0, cfg.MaxHarmonics)
	for k := 2; len(harmonics) < cfg.MaxHarmonics; k++ {
		bin := k * fundamentalBin
		if bin > maxBin {
			break
		}
		value := binValue(magSquared, bin, captureBins)
		thdAbs += value
		harmonics = append(harmonics, value/fundamentalLevel)
	}

	totalAbs := 0.0
	for i := 1; i <= maxBin; i++ {
		totalAbs += sqrtPositive(magSquared[i])
	}
	thdnAbs := max(totalAbs-fundamentalLevel, 0)

	thd := thdAbs / fundamentalLevel
	thdn := thdnAbs / fundamentalLevel

	sinad := math.Inf(1)
	if thdn > 0 {
		sinad = 20 * math.Log10(1/thdn)
	}

	return Result{
		FundamentalBin:   fundamentalBin,
		FundamentalLevel: fundamentalLevel,
		Harmonics:        harmonics,
		THD:              thd,
		THDdB:            ratioToDB(thd),
		THDN:             thdn,
		SINAD:            sinad,
	}
}

// hann returns the periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

func binValue(magSquared []float64, bin, captureBins int) float64 {
	if bin < 0 || bin >= len(magSquared) {
		return 0
	}
	lo := max(bin-captureBins, 0)
	hi := min(bin+captureBins, len(magSquared)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += sqrtPositive(magSquared[i])
	}
	return sum
}

func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
