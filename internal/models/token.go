package models

import (
	"time"
)

// Bearer token issued on successful authentication
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}
