package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var ErrSessionNotFound = errors.New("session not found")

var (
	bucketSession = []byte("session")
	sessionKey    = []byte("current")
)

// Session is the durable part of the client state: the bearer token and the
// user identity. The todo list itself is never persisted, it is re-fetched
type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Store keeps the session in a local bbolt file, the terminal analogue of
// the browser's localStorage
type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(session Session) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		return tx.Bucket(bucketSession).Put(sessionKey, data)
	})
}

func (s *Store) Load() (Session, error) {
	var session Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(sessionKey)
		if data == nil {
			return ErrSessionNotFound
		}

		return json.Unmarshal(data, &session)
	})

	return session, err
}

// Delete drops the stored session. Deleting a missing session is fine
func (s *Store) Delete() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(sessionKey)
	})
}
