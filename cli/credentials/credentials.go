/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials persists the session token between CLI invocations
// using a small Bolt DB in the user's home directory.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/OpsGate/OpsGate/common/interfaces"
)

const bucketSession = "Session"
const keyToken = "token"

// This package implements interfaces.Session
var _ interfaces.Session = (*Store)(nil)

type Store struct {
	db *bbolt.DB
}

// DefaultPath returns the credential store location in the user's home
// directory
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".opsgate", "credentials.db"), nil
}

// Open opens (or creates) the credential store at the specified path.
// 0600 restricts the file to the current user. The Timeout option allows
// Bolt to wait if the file is locked by another process.
func Open(filePath string) (*Store, error) {

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	db, err := bbolt.Open(filePath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close the store, ignore any errors
func (s *Store) Close() {
	_ = s.db.Close()
}

// Token returns the stored token or an empty string
func (s *Store) Token() string {
	var token string
	_ = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))
		if bucket == nil {
			return nil
		}
		token = string(bucket.Get([]byte(keyToken)))
		return nil
	})
	return token
}

// SetToken stores the token. Persistence is best effort because the
// session interface does not surface errors; a failed write simply means
// the user authenticates again next time.
func (s *Store) SetToken(token string) {
	_ = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))
		if bucket == nil {
			return nil
		}
		return bucket.Put([]byte(keyToken), []byte(token))
	})
}

// Clear removes the stored token
func (s *Store) Clear() {
	_ = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(keyToken))
	})
}
