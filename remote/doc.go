/*
Package remote speaks the remote-access relay's vocabulary: the role a
computer takes in a control session and the connection details for reaching
a relay.

A [ConnectionInfo] round-trips through the URL format shared out-of-band
between users, validates itself before any dialing happens, and dials the
relay over a websocket. The settings catalog converts its persisted
connection-mode option into a [Role] with settings.RemoteConnectionMode's
Role method; this package never reads configuration itself.
*/
package remote
