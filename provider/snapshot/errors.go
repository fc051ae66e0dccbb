/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot

import "errors"

var (
	// ErrFetch indicates a remote snapshot that could not be retrieved.
	ErrFetch = errors.New("snapshot fetch failed")

	// ErrInvalidSnapshot indicates a document that cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrVersionMismatch indicates a request for a design system or
	// version the snapshot does not hold.
	ErrVersionMismatch = errors.New("snapshot version mismatch")
)
