package pricing

import "errors"

// ErrRunActive is returned when a manual trigger races an active sweep.
var ErrRunActive = errors.New("pricing: a reconciliation run is already active")
