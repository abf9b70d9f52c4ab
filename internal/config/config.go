// SPDX-License-Identifier: EPL-2.0

// Package config resolves run configuration for the CLI from defaults,
// an optional YAML file, and SP404PREP_* environment overrides, applied
// in that order. The mirroring core never reads this package; it gets
// plain values injected.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ChannelsKeep preserves the source channel count.
	ChannelsKeep = "keep"
	// ChannelsMono downmixes multi-channel input to one channel.
	ChannelsMono = "mono"
)

var (
	ErrNoSource      = errors.New("no source root configured")
	ErrNoDestination = errors.New("no destination root configured")
	ErrBadChannels   = errors.New("channels must be \"keep\" or \"mono\"")
	ErrBadFormat     = errors.New("unknown input format")
)

// knownFormats are the decoders the CLI can enable.
var knownFormats = []string{"wav", "mp3", "ogg", "aiff"}

// SMB holds the connection parameters for a remote share source.
type SMB struct {
	Server   string `yaml:"server"`
	Share    string `yaml:"share"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Domain   string `yaml:"domain"`
}

// Config is the resolved run configuration.
type Config struct {
	// Source is the root to mirror from: a local path, or a path within
	// the SMB share when SMB.Server is set.
	Source string `yaml:"source"`
	// Destination is the local root to mirror into.
	Destination string `yaml:"destination"`
	// SMB, when Server is non-empty, selects the remote share provider.
	SMB SMB `yaml:"smb"`
	// Channels is the channel policy: "keep" or "mono".
	Channels string `yaml:"channels"`
	// Formats lists the enabled input formats. Only "wav" by default.
	Formats []string `yaml:"formats"`
	// Sort orders listings lexicographically before renaming so repeated
	// runs produce identical names.
	Sort bool `yaml:"sort"`
	// JSON switches reporting from console lines to JSON lines.
	JSON bool `yaml:"json"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Channels: ChannelsKeep,
		Formats:  []string{"wav"},
		Sort:     true,
	}
}

// Load resolves the configuration: defaults, then the YAML file at path
// when non-empty, then SP404PREP_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		resolved, err := resolvePath(path)
		if err != nil {
			return Config{}, err
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SOURCE")); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_DESTINATION")); v != "" {
		cfg.Destination = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SMB_SERVER")); v != "" {
		cfg.SMB.Server = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SMB_SHARE")); v != "" {
		cfg.SMB.Share = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SMB_USER")); v != "" {
		cfg.SMB.User = v
	}
	if v := os.Getenv("SP404PREP_SMB_PASSWORD"); v != "" {
		cfg.SMB.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SMB_DOMAIN")); v != "" {
		cfg.SMB.Domain = v
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_CHANNELS")); v != "" {
		cfg.Channels = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_FORMATS")); v != "" {
		cfg.Formats = splitFormats(v)
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_SORT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sort = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("SP404PREP_JSON")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JSON = b
		}
	}
}

func splitFormats(v string) []string {
	var out []string
	for _, f := range strings.Split(v, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the resolved configuration before a run starts.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" && c.SMB.Server == "" {
		return ErrNoSource
	}
	if strings.TrimSpace(c.Destination) == "" {
		return ErrNoDestination
	}
	switch c.Channels {
	case ChannelsKeep, ChannelsMono:
	default:
		return ErrBadChannels
	}
	for _, f := range c.Formats {
		if !knownFormat(f) {
			return ErrBadFormat
		}
	}
	return nil
}

// Remote reports whether the source lives on an SMB share.
func (c Config) Remote() bool { return c.SMB.Server != "" }

func knownFormat(f string) bool {
	for _, k := range knownFormats {
		if f == k {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Abs(path)
}
