package analysis

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/mjibson/go-dsp/fft"
)

const (
	frameSize = 1024
	hopSize   = 512
)

// Onsets is the result of beat analysis over a decoded track.
type Onsets struct {
	// Envelope is the spectral flux per analysis frame, normalized to [0,1].
	Envelope []float64
	// Times are the detected onset positions from track start.
	Times []time.Duration
	// BPM is the tempo estimate from inter-onset intervals; 0 when fewer
	// than two onsets were found.
	BPM float64
}

// Detect computes an onset envelope via spectral flux and peak-picks
// beat positions. Windowed FFT frames follow the usual Hann + half-frame
// hop layout.
func Detect(samples []float64, sampleRate int) *Onsets {
	if len(samples) < frameSize || sampleRate <= 0 {
		return &Onsets{}
	}

	window := hann(frameSize)
	numFrames := (len(samples)-frameSize)/hopSize + 1

	prev := make([]float64, frameSize/2)
	flux := make([]float64, numFrames)
	buf := make([]complex128, frameSize)

	for f := 0; f < numFrames; f++ {
		off := f * hopSize
		for i := 0; i < frameSize; i++ {
			buf[i] = complex(samples[off+i]*window[i], 0)
		}
		spectrum := fft.FFT(buf)

		sum := 0.0
		for i := 0; i < frameSize/2; i++ {
			mag := cmplx.Abs(spectrum[i])
			if d := mag - prev[i]; d > 0 {
				sum += d
			}
			prev[i] = mag
		}
		flux[f] = sum
	}

	normalize(flux)

	o := &Onsets{Envelope: flux}
	o.Times = pickPeaks(flux, sampleRate)
	o.BPM = estimateBPM(o.Times)
	return o
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

func normalize(v []float64) {
	maxV := 0.0
	for _, x := range v {
		if x > maxV {
			maxV = x
		}
	}
	if maxV == 0 {
		return
	}
	for i := range v {
		v[i] /= maxV
	}
}

// pickPeaks selects local maxima above an adaptive threshold (mean plus
// half a standard deviation over a sliding window), with a 150 ms
// refractory gap so one drum hit does not register twice.
func pickPeaks(flux []float64, sampleRate int) []time.Duration {
	if len(flux) < 3 {
		return nil
	}

	const contextFrames = 20
	minGap := time.Duration(0.150 * float64(time.Second))
	frameDur := time.Duration(float64(hopSize) / float64(sampleRate) * float64(time.Second))

	var times []time.Duration
	var lastOnset time.Duration = -minGap

	for i := 1; i < len(flux)-1; i++ {
		if flux[i] <= flux[i-1] || flux[i] < flux[i+1] {
			continue
		}

		lo := i - contextFrames
		if lo < 0 {
			lo = 0
		}
		hi := i + contextFrames
		if hi > len(flux) {
			hi = len(flux)
		}
		mean, std := meanStd(flux[lo:hi])
		if flux[i] < mean+0.5*std {
			continue
		}

		t := time.Duration(i) * frameDur
		if t-lastOnset < minGap {
			continue
		}
		times = append(times, t)
		lastOnset = t
	}
	return times
}

func meanStd(v []float64) (float64, float64) {
	if len(v) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	mean := sum / float64(len(v))
	varSum := 0.0
	for _, x := range v {
		d := x - mean
		varSum += d * d
	}
	return mean, math.Sqrt(varSum / float64(len(v)))
}

// estimateBPM uses the median inter-onset interval, which shrugs off the
// occasional missed or doubled onset better than the mean.
func estimateBPM(times []time.Duration) float64 {
	if len(times) < 2 {
		return 0
	}
	intervals := make([]time.Duration, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		intervals = append(intervals, times[i]-times[i-1])
	}
	med := median(intervals)
	if med <= 0 {
		return 0
	}
	return float64(time.Minute) / float64(med)
}

func median(v []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(v))
	copy(sorted, v)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted[len(sorted)/2]
}
