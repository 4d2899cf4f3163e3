// internal/types/ids.go
package types

import "github.com/google/uuid"

type SessionID string

func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}
