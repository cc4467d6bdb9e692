// SPDX-License-Identifier: MIT

package mat

import "errors"

// ErrUnknownKernel is returned by ParseKernel for an unrecognised name.
var ErrUnknownKernel = errors.New("mat: unknown multiply kernel")
