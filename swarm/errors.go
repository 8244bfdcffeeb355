package swarm

import "errors"

// ErrInvalidTarget reports non-finite target coordinates; the previous target is kept
var ErrInvalidTarget = errors.New("invalid target")
