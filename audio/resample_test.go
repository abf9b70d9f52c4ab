package audio

import (
	"math"
	"testing"

	"sp404prep/internal/audiotest"
)

func drain(t *testing.T, src *audiotest.MockSource) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 1024)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err != nil {
			return out
		}
	}
}

func TestResample_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frames   int
		channels int
		srcRate  int
		dstRate  int
	}{
		{"96k to 48k stereo", 9600, 2, 96000, 48000},
		{"22.05k to 44.1k mono", 2205, 1, 22050, 44100},
		{"48k to 44.1k mono", 4800, 1, 48000, 44100},
		{"8k to 44.1k stereo", 800, 2, 8000, 44100},
		{"odd frame count", 1001, 1, 96000, 44100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, tt.channels, tt.frames, 440.0)
			in := drain(t, src)

			out := Resample(in, tt.channels, tt.srcRate, tt.dstRate)

			want := int(math.Round(float64(tt.frames) * float64(tt.dstRate) / float64(tt.srcRate)))
			gotFrames := len(out) / tt.channels
			if gotFrames != want {
				t.Errorf("Resample produced %d frames, want %d", gotFrames, want)
			}
			if len(out)%tt.channels != 0 {
				t.Errorf("Resample output %d samples, not a multiple of %d channels", len(out), tt.channels)
			}
		})
	}
}

func TestResample_SameRatePassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 2, 100, 0.25)
	in := drain(t, src)

	out := Resample(in, 2, 44100, 44100)
	if len(out) != len(in) {
		t.Fatalf("same-rate Resample changed length: %d != %d", len(out), len(in))
	}
	for i := range out {
		if out[i] != in[i] {
			t.Fatalf("same-rate Resample changed sample %d: %v != %v", i, out[i], in[i])
		}
	}
}

func TestResample_ChannelsStayAligned(t *testing.T) {
	t.Parallel()

	// Left constant 0.3, right constant 0.7; any channel bleed would pull
	// the values toward each other.
	src := audiotest.NewMockSource(96000, 2, 960, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})
	in := drain(t, src)

	out := Resample(in, 2, 96000, 48000)

	frames := len(out) / 2
	for f := 0; f < frames; f++ {
		left := out[f*2]
		right := out[f*2+1]
		if math.Abs(float64(left-0.3)) > 1e-4 {
			t.Errorf("frame %d left = %v, want 0.3", f, left)
		}
		if math.Abs(float64(right-0.7)) > 1e-4 {
			t.Errorf("frame %d right = %v, want 0.7", f, right)
		}
	}
}

func TestResample_SineSurvivesDownsampling(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(96000, 1, 96000, 440.0)
	in := drain(t, src)

	out := Resample(in, 1, 96000, 48000)

	// Values must remain in a plausible amplitude range
	for i, s := range out {
		if s < -1.1 || s > 1.1 {
			t.Fatalf("out[%d] = %v, outside [-1.1, 1.1]", i, s)
		}
	}

	// Energy should be preserved roughly: a full-scale sine keeps peaks near 1
	var peak float32
	for _, s := range out {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak < 0.9 {
		t.Errorf("downsampled sine peak = %v, want >= 0.9", peak)
	}
}

func TestResample_Empty(t *testing.T) {
	t.Parallel()

	out := Resample(nil, 2, 96000, 48000)
	if len(out) != 0 {
		t.Errorf("Resample(nil) produced %d samples, want 0", len(out))
	}
}

func BenchmarkResample_Downsample(b *testing.B) {
	src := audiotest.NewSineSource(96000, 2, 96000, 440.0)
	var in []float32
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			in = append(in, buf[:n]...)
		}
		if err != nil {
			break
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Resample(in, 2, 96000, 48000)
	}
}
