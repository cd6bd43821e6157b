package waymark

import "errors"

var (
	// ErrBadDefinition marks a defective family declaration: a duplicate
	// value, a missing label, a gap in a continuous run, an unmapped member.
	// It is fatal; construction aborts rather than registering the family.
	ErrBadDefinition = errors.New("bad definition")

	// ErrUnknownMember marks a lookup of a raw value no member declares.
	// It is recoverable; substituting a default is the caller's decision.
	ErrUnknownMember = errors.New("unknown member")
)

// These sentinels serve the stores, sessions, and app configuration
// rather than the family registry itself.
var (
	ErrBadConfig   = errors.New("bad config")
	ErrExists      = errors.New("exists")
	ErrMissingData = errors.New("missing data")
	ErrNotFound    = errors.New("not found")
	ErrNotValid    = errors.New("invalid")
	ErrUnexpected  = errors.New("unexpected")
)
