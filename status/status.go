// Package status defines the peer connection and identity verification
// signals reported by the session layer. Addresses only supply the facts
// (post-quantum variant, ML-KEM commitment) used to pick an IdentityStatus.
package status

// Status represents the presence of a peer as reported by its session.
type Status int

const (
	// Online means the peer is connected and available
	Online Status = iota
	// Away means the peer is connected but idle
	Away
	// Busy means the peer is connected but does not want to be disturbed
	Busy
	// Offline means there is no session with the peer
	Offline
	// Blocked means the peer was blocked locally
	Blocked
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Online:
		return "online"
	case Away:
		return "away"
	case Busy:
		return "busy"
	case Offline:
		return "offline"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Title returns the label shown next to a contact.
func (s Status) Title() string {
	switch s {
	case Online, Away, Busy, Offline, Blocked:
		return s.String()
	default:
		return ""
	}
}

// IsOnline reports whether a session with the peer is live.
func (s Status) IsOnline() bool {
	return s == Online || s == Away || s == Busy
}

// IdentityStatus is the level of quantum-resistant identity verification
// achieved for a session.
type IdentityStatus int

const (
	// IdentityUnknown means not connected or not yet known
	IdentityUnknown IdentityStatus = iota
	// IdentityClassical means an X25519-only session
	IdentityClassical
	// IdentityPQUnverified means a hybrid session whose ML-KEM commitment
	// has not been checked against the peer address
	IdentityPQUnverified
	// IdentityPQVerified means a hybrid session with a verified commitment
	IdentityPQVerified
)

// String returns the string representation of the identity status
func (s IdentityStatus) String() string {
	switch s {
	case IdentityUnknown:
		return "unknown"
	case IdentityClassical:
		return "classical"
	case IdentityPQUnverified:
		return "pq-unverified"
	case IdentityPQVerified:
		return "pq-verified"
	default:
		return "invalid"
	}
}

// Title returns the short label shown for the identity level.
func (s IdentityStatus) Title() string {
	switch s {
	case IdentityUnknown:
		return "Unknown"
	case IdentityClassical:
		return "Classical"
	case IdentityPQUnverified:
		return "PQ Unverified"
	case IdentityPQVerified:
		return "PQ Verified"
	default:
		return ""
	}
}

// Description returns a one-line human readable explanation.
func (s IdentityStatus) Description() string {
	switch s {
	case IdentityUnknown:
		return "Not connected"
	case IdentityClassical:
		return "Classical encryption (X25519) - not quantum-resistant"
	case IdentityPQUnverified:
		return "Post-quantum encryption active, but identity not verified"
	case IdentityPQVerified:
		return "Post-quantum encryption with verified identity - fully quantum-resistant"
	default:
		return ""
	}
}

// IsPQProtected reports whether the session uses post-quantum key exchange,
// whether or not the commitment was verified.
func (s IdentityStatus) IsPQProtected() bool {
	return s == IdentityPQUnverified || s == IdentityPQVerified
}
