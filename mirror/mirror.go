// SPDX-License-Identifier: EPL-2.0

package mirror

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sp404prep/audio"
	"sp404prep/formats/wav"
	"sp404prep/naming"
	"sp404prep/report"
	"sp404prep/source"
)

// Options configures a Mirror. Provider is required; every other field
// has a usable default.
type Options struct {
	// Provider supplies the source tree.
	Provider source.Provider
	// Converter reshapes decoded audio. Defaults to audio.NewConverter().
	Converter *audio.Converter
	// Registry maps extensions to decoders. Defaults to WAV only.
	Registry *audio.Registry
	// Reporter receives progress and error events. Defaults to a no-op.
	Reporter report.Reporter
	// SortEntries orders each listing lexicographically by raw name
	// before counters are assigned, so repeated runs over an unchanged
	// source produce identical names even when the provider enumerates
	// in arbitrary order.
	SortEntries bool
}

// Mirror drives one or more runs over a source tree.
type Mirror struct {
	provider source.Provider
	conv     *audio.Converter
	registry *audio.Registry
	reporter report.Reporter
	sort     bool
}

// New builds a Mirror, filling in defaults for unset options.
func New(opts Options) (*Mirror, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Converter == nil {
		opts.Converter = audio.NewConverter()
	}
	if opts.Registry == nil {
		opts.Registry = audio.NewRegistry()
		opts.Registry.Register("wav", wav.Decoder{})
	}
	if opts.Reporter == nil {
		opts.Reporter = report.Nop()
	}

	return &Mirror{
		provider: opts.Provider,
		conv:     opts.Converter,
		registry: opts.Registry,
		reporter: opts.Reporter,
		sort:     opts.SortEntries,
	}, nil
}

// Run mirrors srcRoot into dstRoot. It always returns a summary; only
// root-level faults (destination root cannot be created, source root
// cannot be listed) produce a failed result, and cancellation leaves
// already-written output in place.
func (m *Mirror) Run(ctx context.Context, srcRoot, dstRoot string) RunResult {
	res := RunResult{State: StateRunning}

	if err := os.MkdirAll(dstRoot, 0o755); err != nil {
		return m.fail(res, "creating destination root", err, dstRoot)
	}

	entries, err := m.provider.List(ctx, srcRoot)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.State = StateCancelled
			res.Err = ctxErr
			return res
		}
		return m.fail(res, "listing source root", err, srcRoot)
	}

	staging := ""
	if m.provider.Remote() {
		staging, err = os.MkdirTemp("", "sp404prep-*")
		if err != nil {
			return m.fail(res, "creating staging directory", err, "")
		}
		defer os.RemoveAll(staging)
	}

	if err := m.walk(ctx, dstRoot, entries, staging, &res); err != nil {
		res.State = StateCancelled
		res.Err = err
		m.reporter.Report(report.Event{
			Severity: report.Warn,
			Message:  "run cancelled",
			Context:  map[string]string{"reason": err.Error()},
		})
		return res
	}

	res.State = StateCompleted
	return res
}

func (m *Mirror) fail(res RunResult, msg string, err error, path string) RunResult {
	res.State = StateFailed
	res.Err = fmt.Errorf("%s: %w", msg, err)
	evCtx := map[string]string{"error": err.Error()}
	if path != "" {
		evCtx["path"] = path
	}
	m.reporter.Report(report.Event{Severity: report.Error, Message: msg, Context: evCtx})
	return res
}

// walk processes one directory's entries. The returned error is non-nil
// only on cancellation; every other fault is absorbed into res.
func (m *Mirror) walk(ctx context.Context, dstPath string, entries []source.Entry, staging string, res *RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.sort {
		slices.SortFunc(entries, func(a, b source.Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	counter := 0
	dirSeen := map[string]bool{}

	for _, e := range entries {
		if e.Name == "." || e.Name == ".." {
			continue
		}

		if e.Dir {
			if err := m.processDir(ctx, e, dstPath, staging, dirSeen, res); err != nil {
				return err
			}
			continue
		}

		dec, ok := m.registry.Lookup(e.Name)
		if !ok {
			res.SkippedFiles++
			m.reporter.Report(report.Event{
				Severity: report.Info,
				Message:  "skipping unsupported file",
				Context:  map[string]string{"path": e.Path},
			})
			continue
		}

		dstName := naming.Normalize(e.Name, counter)
		if err := m.convertFile(ctx, e, dec, filepath.Join(dstPath, dstName), staging); err != nil {
			res.FailedFiles++
			m.reporter.Report(report.Event{
				Severity: report.Error,
				Message:  "file conversion failed",
				Context:  map[string]string{"path": e.Path, "error": err.Error()},
			})
			continue
		}

		res.Converted++
		counter++
		m.reporter.Report(report.Event{
			Severity: report.Info,
			Message:  "converted",
			Context:  map[string]string{"path": e.Path, "dest": filepath.Join(dstPath, dstName)},
		})
	}

	return nil
}

// processDir recurses into one subdirectory. Listing or creation faults
// skip the subtree; sibling entries keep processing.
func (m *Mirror) processDir(ctx context.Context, e source.Entry, dstPath, staging string, dirSeen map[string]bool, res *RunResult) error {
	dstName := naming.Normalize(e.Name, 0)
	if dirSeen[dstName] {
		// Two sibling directories reduced to the same name. Their
		// contents are merged into one destination directory and later
		// files overwrite earlier ones on stem collisions.
		m.reporter.Report(report.Event{
			Severity: report.Warn,
			Message:  "sibling directories merge after renaming",
			Context:  map[string]string{"path": e.Path, "dest": dstName},
		})
	}
	dirSeen[dstName] = true

	dstChild := filepath.Join(dstPath, dstName)
	if err := os.MkdirAll(dstChild, 0o755); err != nil {
		res.SkippedDirs++
		m.reporter.Report(report.Event{
			Severity: report.Warn,
			Message:  "skipping subtree: cannot create destination directory",
			Context:  map[string]string{"path": e.Path, "dest": dstChild, "error": err.Error()},
		})
		return nil
	}

	children, err := m.provider.List(ctx, e.Path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		res.SkippedDirs++
		m.reporter.Report(report.Event{
			Severity: report.Warn,
			Message:  "skipping subtree: cannot list directory",
			Context:  map[string]string{"path": e.Path, "error": err.Error()},
		})
		return nil
	}

	return m.walk(ctx, dstChild, children, staging, res)
}

// convertFile fetches, decodes, converts and writes a single file. Any
// staging copy is removed before returning, whatever the outcome.
func (m *Mirror) convertFile(ctx context.Context, e source.Entry, dec audio.Decoder, dstFile, staging string) error {
	rc, err := m.provider.Open(ctx, e.Path)
	if err != nil {
		return fmt.Errorf("fetching: %w", err)
	}

	var r io.Reader = rc
	if staging != "" {
		stagePath, err := m.stage(rc, staging)
		rc.Close()
		if err != nil {
			return fmt.Errorf("staging: %w", err)
		}
		defer os.Remove(stagePath)

		staged, err := os.Open(stagePath)
		if err != nil {
			return fmt.Errorf("staging: %w", err)
		}
		defer staged.Close()
		r = staged
	} else {
		defer rc.Close()
	}

	src, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	pcm, err := m.conv.Convert(src)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := wav.WritePCM16(out, pcm.SampleRate, pcm.Channels, pcm.Samples); err != nil {
		out.Close()
		os.Remove(dstFile)
		return fmt.Errorf("writing output: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dstFile)
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// stage copies a remote file into the run's staging directory so the
// decoder gets fast, seekable local bytes.
func (m *Mirror) stage(r io.Reader, staging string) (string, error) {
	f, err := os.CreateTemp(staging, "fetch-*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
