// Package migration upgrades legacy plaintext passwords to bcrypt hashes.
package migration

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/utils"
)

// CredentialStore is the part of the user store the migration needs
type CredentialStore interface {
	ListCredentials(ctx context.Context) ([]models.UserCredential, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// PlaintextUser identifies an account whose password is not hashed yet
type PlaintextUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Status summarises how many stored passwords are hashed
type Status struct {
	TotalUsers           int             `json:"total_users"`
	EncryptedUsers       int             `json:"encrypted_users"`
	PlaintextUsers       int             `json:"plaintext_users"`
	PasswordlessUsers    int             `json:"passwordless_users"`
	EncryptionPercentage int             `json:"encryption_percentage"`
	PlaintextUsersList   []PlaintextUser `json:"plaintext_users_list"`
}

// Result reports a MigrateAll run
type Result struct {
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}

// Migrator hashes plaintext passwords in place
type Migrator struct {
	store CredentialStore
	hash  func(string) (string, error)
}

// NewMigrator creates a new Migrator
func NewMigrator(store CredentialStore) *Migrator {
	return &Migrator{store: store, hash: utils.HashPassword}
}

// Status reports the current state without changing anything. Accounts with
// no password (Google sign-in) are counted separately and left out of the
// percentage.
func (m *Migrator) Status(ctx context.Context) (*Status, error) {
	creds, err := m.store.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	s := &Status{TotalUsers: len(creds), PlaintextUsersList: make([]PlaintextUser, 0)}
	for _, c := range creds {
		switch {
		case c.PasswordHash == "":
			s.PasswordlessUsers++
		case utils.IsHashed(c.PasswordHash):
			s.EncryptedUsers++
		default:
			s.PlaintextUsers++
			s.PlaintextUsersList = append(s.PlaintextUsersList, PlaintextUser{
				ID:       c.ID.String(),
				Username: c.Username,
				Email:    c.Email,
			})
		}
	}

	withPassword := s.EncryptedUsers + s.PlaintextUsers
	if withPassword == 0 {
		s.EncryptionPercentage = 100
	} else {
		s.EncryptionPercentage = int(math.Round(float64(s.EncryptedUsers) / float64(withPassword) * 100))
	}
	return s, nil
}

// MigrateAll hashes every plaintext password. A failure on one account is
// logged and counted; the run carries on with the next account.
func (m *Migrator) MigrateAll(ctx context.Context) (*Result, error) {
	creds, err := m.store.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	res := &Result{}
	for _, c := range creds {
		if c.PasswordHash == "" || utils.IsHashed(c.PasswordHash) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		hashed, err := m.hash(c.PasswordHash)
		if err != nil {
			log.Printf("migration: hash password for %s: %v", c.Username, err)
			res.Failed++
			continue
		}
		if err := m.store.UpdatePasswordHash(ctx, c.ID, hashed); err != nil {
			log.Printf("migration: update password for %s: %v", c.Username, err)
			res.Failed++
			continue
		}
		log.Printf("migration: migrated password for %s", c.Username)
		res.Migrated++
	}
	return res, nil
}
