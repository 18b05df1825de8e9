package game

import "fmt"

// SessionSnapshot — сериализуемое состояние партии, которое можно положить в Redis.
type SessionSnapshot struct {
	SessionID string `json:"sessionId"`
	Secret    string `json:"secret"`
	Attempts  int    `json:"attempts"`
	State     string `json:"state"`
}

func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		SessionID: s.id,
		Secret:    s.secret.String(),
		Attempts:  s.attempts,
		State:     string(s.state),
	}
}

// RestoreSession rebuilds a session from a snapshot. Snapshots come from
// storage, not from the player, so a malformed one is an error, not a
// re-prompt.
func RestoreSession(snap SessionSnapshot) (*Session, error) {
	secret, err := codeFromString(snap.Secret)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", snap.SessionID, err)
	}

	st := State(snap.State)
	if st != Playing && st != Won {
		return nil, fmt.Errorf("restore session %s: unknown state %q", snap.SessionID, snap.State)
	}
	if snap.Attempts < 0 {
		return nil, fmt.Errorf("restore session %s: negative attempts %d", snap.SessionID, snap.Attempts)
	}

	return &Session{
		id:       snap.SessionID,
		secret:   secret,
		attempts: snap.Attempts,
		state:    st,
	}, nil
}
