package models

// ConnectionState is the connectivity state published by the connection
// manager. The set of implementations is closed: Offline, Online, Syncing
// and ConnectionError.
type ConnectionState interface {
	isConnectionState()
	String() string
}

// Offline is the default state while no user is authenticated.
type Offline struct{}

// Online means the last reachability probe or sync succeeded.
type Online struct{}

// Syncing means a sync operation is in flight. Probes are skipped.
type Syncing struct{}

// ConnectionError means the last probe or sync failed with a recoverable
// network or server error.
type ConnectionError struct {
	Message string
}

func (Offline) isConnectionState()         {}
func (Online) isConnectionState()          {}
func (Syncing) isConnectionState()         {}
func (ConnectionError) isConnectionState() {}

func (Offline) String() string           { return "offline" }
func (Online) String() string            { return "online" }
func (Syncing) String() string           { return "syncing" }
func (c ConnectionError) String() string { return "connection error: " + c.Message }
