// SPDX-License-Identifier: EPL-2.0

// Command sp404prep mirrors a sample library into an SP-404 MKII ready
// tree: names normalized to the import charset, audio transcoded to
// 16-bit PCM WAV at a supported rate.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"sp404prep"
	"sp404prep/internal/config"
	"sp404prep/mirror"
	"sp404prep/report"
	"sp404prep/source"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		src         = flag.String("src", "", "source root (local path, or path within the SMB share)")
		dest        = flag.String("dest", "", "destination root")
		smbServer   = flag.String("smb-server", "", "SMB server, enables the remote provider")
		smbShare    = flag.String("smb-share", "", "SMB share name")
		smbUser     = flag.String("smb-user", "", "SMB user")
		smbPassword = flag.String("smb-password", "", "SMB password")
		smbDomain   = flag.String("smb-domain", "", "SMB domain")
		channels    = flag.String("channels", "", "channel policy: keep or mono")
		formats     = flag.String("formats", "", "comma-separated input formats (wav,mp3,ogg,aiff)")
		jsonOut     = flag.Bool("json", false, "emit JSON lines instead of console output")
		noSort      = flag.Bool("no-sort", false, "process entries in provider order instead of sorted")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sp404prep: %v\n", err)
		os.Exit(2)
	}

	// Flags win over file and environment.
	if *src != "" {
		cfg.Source = *src
	}
	if *dest != "" {
		cfg.Destination = *dest
	}
	if *smbServer != "" {
		cfg.SMB.Server = *smbServer
	}
	if *smbShare != "" {
		cfg.SMB.Share = *smbShare
	}
	if *smbUser != "" {
		cfg.SMB.User = *smbUser
	}
	if *smbPassword != "" {
		cfg.SMB.Password = *smbPassword
	}
	if *smbDomain != "" {
		cfg.SMB.Domain = *smbDomain
	}
	if *channels != "" {
		cfg.Channels = strings.ToLower(*channels)
	}
	if *formats != "" {
		cfg.Formats = strings.Split(strings.ToLower(*formats), ",")
	}
	if *jsonOut {
		cfg.JSON = true
	}
	if *noSort {
		cfg.Sort = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "sp404prep: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reporter report.Reporter = report.NewConsole(os.Stderr)
	if cfg.JSON {
		reporter = report.NewJSONLines(os.Stdout)
	}

	opts := sp404prep.PrepareOptions{
		Formats:     cfg.Formats,
		DownmixMono: cfg.Channels == config.ChannelsMono,
		Sort:        cfg.Sort,
		Reporter:    reporter,
	}
	if cfg.Remote() {
		opts.SMB = &source.SMBConfig{
			Server:   cfg.SMB.Server,
			Share:    cfg.SMB.Share,
			User:     cfg.SMB.User,
			Password: cfg.SMB.Password,
			Domain:   cfg.SMB.Domain,
		}
	}

	res, err := sp404prep.Prepare(ctx, cfg.Source, cfg.Destination, opts)

	fmt.Fprintf(os.Stderr, "%s: %d converted, %d skipped, %d failed, %d subtrees skipped\n",
		res.State, res.Converted, res.SkippedFiles, res.FailedFiles, res.SkippedDirs)

	switch {
	case res.State == mirror.StateCancelled:
		os.Exit(130)
	case err != nil || !res.Success():
		os.Exit(1)
	}
}
