// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/hirochachacha/go-smb2"
)

// SMBConfig holds the connection parameters for an SMB share.
type SMBConfig struct {
	// Server is the host to connect to, with an optional port. Port 445
	// is assumed when none is given.
	Server string
	// Share is the name of the share to mount.
	Share    string
	User     string
	Password string
	Domain   string
}

// SMB reads from a mounted SMB share. Obtain one with DialSMB and Close
// it when the run is over.
type SMB struct {
	conn    net.Conn
	session *smb2.Session
	share   *smb2.Share

	closeOnce sync.Once
	closeErr  error
}

// DialSMB connects to the server, authenticates and mounts the share.
func DialSMB(ctx context.Context, cfg SMBConfig) (*SMB, error) {
	if cfg.Server == "" {
		return nil, ErrNoServer
	}
	if cfg.Share == "" {
		return nil, ErrNoShare
	}

	addr := cfg.Server
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "445")
	}

	var nd net.Dialer
	conn, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}

	dialer := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     cfg.User,
			Password: cfg.Password,
			Domain:   cfg.Domain,
		},
	}

	session, err := dialer.DialContext(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smb session: %w", err)
	}

	share, err := session.Mount(cfg.Share)
	if err != nil {
		session.Logoff()
		conn.Close()
		return nil, fmt.Errorf("mounting %s: %w", cfg.Share, err)
	}

	return &SMB{conn: conn, session: session, share: share}, nil
}

func (s *SMB) List(ctx context.Context, path string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirents, err := s.share.ReadDir(toSMBPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{
			Name: d.Name(),
			Dir:  d.IsDir(),
			Path: s.Join(path, d.Name()),
		})
	}

	return entries, nil
}

func (s *SMB) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.share.Open(toSMBPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return f, nil
}

func (s *SMB) Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, "/\\")
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "/")
}

func (s *SMB) Remote() bool { return true }

// Close unmounts the share and tears down the session. Safe to call more
// than once.
func (s *SMB) Close() error {
	s.closeOnce.Do(func() {
		if err := s.share.Umount(); err != nil {
			s.closeErr = err
		}
		if err := s.session.Logoff(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
		if err := s.conn.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	})
	return s.closeErr
}

// toSMBPath converts a slash-separated path to the wire form go-smb2
// expects. The share root maps to the empty string.
func toSMBPath(path string) string {
	path = strings.Trim(path, "/\\")
	if path == "" || path == "." {
		return ""
	}
	return strings.ReplaceAll(path, "/", `\`)
}
