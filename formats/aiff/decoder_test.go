package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader serves pre-built integer PCM samples.
type fakeAiffReader struct {
	data   []int
	pos    int
	format *goaudio.Format
}

func (f *fakeAiffReader) Format() *goaudio.Format { return f.format }

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples16Bit(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeAiffReader{
			data:   []int{0, 16384, -16384, 32767, -32768},
			format: &goaudio.Format{SampleRate: 44100, NumChannels: 1},
		},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("sample %d = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ReadSamples24Bit(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeAiffReader{
			data:   []int{4194304, -8388608},
			format: &goaudio.Format{SampleRate: 48000, NumChannels: 1},
		},
		sampleRate: 48000,
		channels:   1,
		bitDepth:   24,
	}

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
	if dst[0] != 0.5 {
		t.Errorf("sample 0 = %v, want 0.5", dst[0])
	}
	if dst[1] != -1 {
		t.Errorf("sample 1 = %v, want -1", dst[1])
	}
}

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeAiffReader{
			data:   []int{1000, -1000},
			format: &goaudio.Format{SampleRate: 44100, NumChannels: 1},
		},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF on short read", err)
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeAiffReader{
			format: &goaudio.Format{SampleRate: 44100, NumChannels: 1},
		},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 {
		t.Errorf("ReadSamples() at EOF n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() at EOF error = %v, want io.EOF", err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a form aiff container")))
	if err == nil {
		t.Fatal("Decode() on garbage: want error, got nil")
	}
}
