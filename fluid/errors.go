/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fluid

import "errors"

var (
	// ErrDegenerateRange indicates a viewport range with no width, or any
	// input that would put a non-finite number into a clamp() expression.
	ErrDegenerateRange = errors.New("degenerate fluid range")

	// ErrInvalidTemplate indicates a variable template without exactly one
	// placeholder.
	ErrInvalidTemplate = errors.New("invalid fluid variable template")

	// ErrIncompletePair indicates a pair missing its min or max size.
	ErrIncompletePair = errors.New("incomplete fluid pair")
)
