package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tu-curso/course-service/internal/domain"
)

// Credential verification failures.
var (
	ErrUnknownSubject = errors.New("subject not found")
	ErrBadCredentials = errors.New("bad credentials")
)

// UserLookup resolves a login subject to the current user record. Satisfied
// by repository.UserRepository.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CredentialVerifier authenticates login attempts against stored bcrypt
// hashes. It only ever reads credential records.
type CredentialVerifier struct {
	users UserLookup
}

// NewCredentialVerifier builds a verifier over the given lookup.
func NewCredentialVerifier(users UserLookup) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify checks the presented password for the subject. On success it returns
// the user record carrying the role needed to issue a token.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}
