package remote

import "fmt"

// A Role is the part a computer plays in a control session: the leader
// drives, a follower is driven.
//
// Further roles may arrive, such as an observer that neither controls nor
// is controlled; declare them here and extend the settings catalog's
// mapping, which verifies itself against this set.
type Role string

const (
	RoleFollower Role = "follower"
	RoleLeader   Role = "leader"
)

func (r Role) String() string { return string(r) }

func (r Role) Valid() error {
	switch r {
	case RoleFollower, RoleLeader:
		return nil
	default:
		return fmt.Errorf("%w: role %q", ErrNotValid, string(r))
	}
}

// Counterpart returns the Role the other side of a session holds.
func (r Role) Counterpart() Role {
	if r == RoleLeader {
		return RoleFollower
	}

	return RoleLeader
}
