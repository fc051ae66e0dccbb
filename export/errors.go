/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import "errors"

// ErrDuplicateName indicates two declarations with the same variable name
// in one document.
var ErrDuplicateName = errors.New("duplicate variable name")
