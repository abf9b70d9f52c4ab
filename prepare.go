// SPDX-License-Identifier: EPL-2.0

package sp404prep

import (
	"context"
	"fmt"

	"sp404prep/audio"
	"sp404prep/formats/aiff"
	"sp404prep/formats/mp3"
	"sp404prep/formats/vorbis"
	"sp404prep/formats/wav"
	"sp404prep/mirror"
	"sp404prep/report"
	"sp404prep/source"
)

// PrepareOptions tunes a one-call preparation run. The zero value mirrors
// a local tree with the sampler defaults: WAV input only, channels
// preserved, no reporting.
type PrepareOptions struct {
	// SMB, when non-nil, reads the source tree from a remote share
	// instead of the local filesystem.
	SMB *source.SMBConfig
	// Formats lists the enabled input formats by extension ("wav",
	// "mp3", "ogg", "aiff"). Empty means WAV only.
	Formats []string
	// DownmixMono forces multi-channel input down to one channel.
	DownmixMono bool
	// Sort orders listings lexicographically before renaming.
	Sort bool
	// Reporter receives progress and error events.
	Reporter report.Reporter
}

// NewRegistry builds a decoder registry for the named formats. With no
// arguments only WAV is enabled.
func NewRegistry(formats ...string) (*audio.Registry, error) {
	if len(formats) == 0 {
		formats = []string{"wav"}
	}

	reg := audio.NewRegistry()
	for _, f := range formats {
		switch f {
		case "wav":
			reg.Register("wav", wav.Decoder{})
		case "mp3":
			reg.Register("mp3", mp3.Decoder{})
		case "ogg":
			reg.Register("ogg", vorbis.Decoder{})
		case "aiff":
			reg.Register("aiff", aiff.Decoder{})
			reg.Register("aif", aiff.Decoder{})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
		}
	}

	return reg, nil
}

// Prepare mirrors srcRoot into dstRoot in one call, dialing and releasing
// the SMB session itself when one is configured. The returned RunResult
// is valid even when err is non-nil.
func Prepare(ctx context.Context, srcRoot, dstRoot string, opts PrepareOptions) (mirror.RunResult, error) {
	registry, err := NewRegistry(opts.Formats...)
	if err != nil {
		return mirror.RunResult{State: mirror.StateFailed, Err: err}, err
	}

	var provider source.Provider = source.NewLocal()
	if opts.SMB != nil {
		smb, err := source.DialSMB(ctx, *opts.SMB)
		if err != nil {
			err = fmt.Errorf("connecting to share: %w", err)
			return mirror.RunResult{State: mirror.StateFailed, Err: err}, err
		}
		defer smb.Close()
		provider = smb
	}

	conv := audio.NewConverter()
	if opts.DownmixMono {
		conv.Policy = audio.DownmixMonoPolicy
	}

	m, err := mirror.New(mirror.Options{
		Provider:    provider,
		Converter:   conv,
		Registry:    registry,
		Reporter:    opts.Reporter,
		SortEntries: opts.Sort,
	})
	if err != nil {
		return mirror.RunResult{State: mirror.StateFailed, Err: err}, err
	}

	res := m.Run(ctx, srcRoot, dstRoot)
	return res, res.Err
}
