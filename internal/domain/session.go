package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session representa uma sessão interativa do painel. A sessão nasce
// não autenticada e só passa pelo portão de login uma vez.
type Session struct {
	ID            string
	StartedAt     time.Time
	Authenticated bool
	LoginAttempts int
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}
