/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token decoding.
var (
	// ErrUnknownKind indicates an unrecognized tokenType.
	ErrUnknownKind = errors.New("unknown token kind")

	// ErrInvalidValue indicates a value payload that does not match its kind.
	ErrInvalidValue = errors.New("invalid token value")
)
