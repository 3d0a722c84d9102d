package models

import (
	"time"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	Username     string
	PasswordHash string

	// Optional, nil for users registered before recovery phrases existed
	RecoveryPhraseHash *string
}
