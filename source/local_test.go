package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocal_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "kicks"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snare.wav"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewLocal().List(context.Background(), dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	kicks, ok := byName["kicks"]
	if !ok || !kicks.Dir {
		t.Errorf("kicks entry = %+v, want directory", kicks)
	}
	snare, ok := byName["snare.wav"]
	if !ok || snare.Dir {
		t.Errorf("snare.wav entry = %+v, want file", snare)
	}
	if snare.Path != filepath.Join(dir, "snare.wav") {
		t.Errorf("snare.wav path = %q, want %q", snare.Path, filepath.Join(dir, "snare.wav"))
	}
}

func TestLocal_ListMissing(t *testing.T) {
	t.Parallel()

	_, err := NewLocal().List(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("List() on missing dir: want error, got nil")
	}
}

func TestLocal_ListFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "f.wav")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLocal().List(context.Background(), file)
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("List() on a file error = %v, want ErrNotDirectory", err)
	}
}

func TestLocal_Open(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "f.wav")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := NewLocal().Open(context.Background(), file)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}
}

func TestLocal_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLocal().List(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("List() with cancelled context error = %v, want context.Canceled", err)
	}
	if _, err := NewLocal().Open(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Errorf("Open() with cancelled context error = %v, want context.Canceled", err)
	}
}

func TestLocal_Remote(t *testing.T) {
	t.Parallel()

	if NewLocal().Remote() {
		t.Error("Local.Remote() = true, want false")
	}
}

func TestSMB_Join(t *testing.T) {
	t.Parallel()

	var s SMB
	tests := []struct {
		elem []string
		want string
	}{
		{[]string{"a", "b"}, "a/b"},
		{[]string{"", "b"}, "b"},
		{[]string{"a/", "/b"}, "a/b"},
		{[]string{}, ""},
	}
	for _, tt := range tests {
		if got := s.Join(tt.elem...); got != tt.want {
			t.Errorf("Join(%q) = %q, want %q", tt.elem, got, tt.want)
		}
	}
}

func TestToSMBPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{".", ""},
		{"/", ""},
		{"a/b/c", `a\b\c`},
		{"/a/b/", `a\b`},
	}
	for _, tt := range tests {
		if got := toSMBPath(tt.in); got != tt.want {
			t.Errorf("toSMBPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDialSMB_Validation(t *testing.T) {
	t.Parallel()

	if _, err := DialSMB(context.Background(), SMBConfig{Share: "samples"}); !errors.Is(err, ErrNoServer) {
		t.Errorf("DialSMB() without server error = %v, want ErrNoServer", err)
	}
	if _, err := DialSMB(context.Background(), SMBConfig{Server: "nas"}); !errors.Is(err, ErrNoShare) {
		t.Errorf("DialSMB() without share error = %v, want ErrNoShare", err)
	}
}
