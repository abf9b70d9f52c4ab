// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"sp404prep/utils"
)

// ImportRates are the sample rates the SP-404 MKII accepts, ascending.
var ImportRates = []int{44100, 48000}

// ChannelPolicy decides what happens to multi-channel input.
type ChannelPolicy int

const (
	// KeepChannels preserves the source channel count.
	KeepChannels ChannelPolicy = iota
	// DownmixMonoPolicy averages all channels into one.
	DownmixMonoPolicy
)

// PCM16 is a fully converted clip ready for WAV encapsulation.
type PCM16 struct {
	Samples    []int16 // interleaved by channel
	SampleRate int
	Channels   int
}

// Converter reshapes decoded audio into sampler-compliant 16-bit PCM.
// The zero value is not usable; use NewConverter.
type Converter struct {
	// Rates are the candidate target sample rates, ascending.
	Rates []int
	// Policy controls multi-channel handling.
	Policy ChannelPolicy
	// Headroom is the peak-normalization ceiling (fraction of full scale).
	Headroom float32
	// BufSize is the read chunk size in samples.
	BufSize int
}

// NewConverter returns a converter with the sampler defaults: target rates
// 44100/48000 Hz, channels preserved, peaks normalized to 0.95.
func NewConverter() *Converter {
	return &Converter{
		Rates:    ImportRates,
		Policy:   KeepChannels,
		Headroom: 0.95,
		BufSize:  4096,
	}
}

// NearestRate picks the candidate minimizing absolute distance to rate.
// Candidates are iterated in ascending order with a strict comparison, so an
// exact halfway tie resolves to the lower candidate.
func NearestRate(rate int, candidates []int) int {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c-rate) < abs(best-rate) {
			best = c
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Convert drains src and produces compliant PCM: nearest supported rate,
// channel policy applied, peaks scaled to the headroom ceiling, samples
// quantized to signed 16-bit. The source is not closed.
func (c *Converter) Convert(src Source) (*PCM16, error) {
	if len(c.Rates) == 0 {
		return nil, ErrNoTargetRates
	}

	channels := src.Channels()
	srcRate := src.SampleRate()
	if channels < 1 || srcRate <= 0 {
		return nil, ErrInvalidStream
	}

	data, err := c.readAll(src)
	if err != nil {
		return nil, fmt.Errorf("draining source: %w", err)
	}
	if len(data)%channels != 0 {
		return nil, ErrInvalidSamples
	}

	targetRate := NearestRate(srcRate, c.Rates)
	if targetRate != srcRate {
		data = Resample(data, channels, srcRate, targetRate)
	}

	if c.Policy == DownmixMonoPolicy && channels > 1 {
		data = DownmixMono(data, channels)
		channels = 1
	}

	normalizePeak(data, c.Headroom)

	pcm := make([]int16, len(data))
	for i, s := range data {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return &PCM16{
		Samples:    pcm,
		SampleRate: targetRate,
		Channels:   channels,
	}, nil
}

func (c *Converter) readAll(src Source) ([]float32, error) {
	bufSize := c.BufSize
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Round the chunk up to whole frames
	if rem := bufSize % src.Channels(); rem != 0 {
		bufSize += src.Channels() - rem
	}

	var data []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// a source returning (0, nil) makes no progress; treat as done
			return data, nil
		}
	}
}

// normalizePeak scales samples in place so the maximum absolute value hits
// ceiling. Silent input is left untouched.
func normalizePeak(samples []float32, ceiling float32) {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		return
	}

	gain := ceiling / peak
	for i := range samples {
		samples[i] *= gain
	}
}
