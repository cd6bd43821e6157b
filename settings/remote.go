package settings

import (
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/remote"
)

// A RemoteConnectionMode is which side of a remote-access session this
// computer takes. Declared continuous: dialog code indexes tables by it.
type RemoteConnectionMode int

const (
	RemoteConnectionModeFollower RemoteConnectionMode = 0
	RemoteConnectionModeLeader   RemoteConnectionMode = 1
)

// DisplayLabel resolves the localized description of m.
func (m RemoteConnectionMode) DisplayLabel() string { return RemoteConnectionModeFamily.DisplayLabel(m) }

// Valid reports whether m is a declared member.
func (m RemoteConnectionMode) Valid() error {
	_, err := RemoteConnectionModeFamily.Lookup(m)
	return err
}

// Role converts m into the role the remote subsystem speaks.
//
// The conversion is total over declared members; init proves it, so a
// member added here without a remoteRoles entry panics at startup.
func (m RemoteConnectionMode) Role() remote.Role { return remoteRoles[m] }

var RemoteConnectionModeFamily = waymark.MustEnum("RemoteConnectionMode", []waymark.Def[RemoteConnectionMode]{
	{Value: RemoteConnectionModeFollower, Label: waymark.Label{Key: "Allow this computer to be controlled", Context: "remote"}},
	{Value: RemoteConnectionModeLeader, Label: waymark.Label{Key: "Control another computer", Context: "remote"}},
}, waymark.Continuous())

var remoteRoles = map[RemoteConnectionMode]remote.Role{
	RemoteConnectionModeFollower: remote.RoleFollower,
	RemoteConnectionModeLeader:   remote.RoleLeader,
}

func init() {
	if err := waymark.VerifyMapping(RemoteConnectionModeFamily, remoteRoles); err != nil {
		panic(err)
	}
}

// A RemoteServerType is which relay server a session uses: one somebody
// already runs, or one this computer hosts.
type RemoteServerType bool

const (
	RemoteServerTypeExisting RemoteServerType = false
	RemoteServerTypeLocal    RemoteServerType = true
)

// DisplayLabel resolves the localized description of s.
func (s RemoteServerType) DisplayLabel() string { return RemoteServerTypeFamily.DisplayLabel(s) }

// Valid reports whether s is a declared member.
func (s RemoteServerType) Valid() error {
	_, err := RemoteServerTypeFamily.Lookup(s)
	return err
}

var RemoteServerTypeFamily = waymark.MustBoolFlag("RemoteServerType", []waymark.Def[RemoteServerType]{
	{Value: RemoteServerTypeExisting, Label: waymark.Label{Key: "Use existing", Context: "remote"}},
	{Value: RemoteServerTypeLocal, Label: waymark.Label{Key: "Host locally", Context: "remote"}},
}, waymark.Continuous())
