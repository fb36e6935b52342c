package stream

import "errors"

// ErrCloseAtRoot is returned by a Builder configured with CloseError when
// a close event arrives with no open element above the root.
var ErrCloseAtRoot = errors.New("close event at document root")
