// SPDX-License-Identifier: EPL-2.0

// Package source abstracts where sample trees are read from.
//
// A Provider lists directories and opens files on some backing store. Two
// realizations exist: Local for the machine's own filesystem and SMB for
// network shares, the usual place studio sample libraries live. The mirror
// package walks a tree through this interface and never touches the
// filesystem APIs directly, so a run behaves the same against either
// backend.
package source
