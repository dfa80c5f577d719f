package layout

import "errors"

// ErrInvalidConfiguration is returned for layouts that cannot be drawn:
// no items, non-positive grid dimensions, or margins and gaps that leave no
// room for cells.
var ErrInvalidConfiguration = errors.New("invalid configuration")
