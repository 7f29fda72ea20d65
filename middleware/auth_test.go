package middleware

import (
	"context"
	"testing"

	userRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
	"github.com/MazaSebastian/crop-crm-sub000/models"
)

type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) Create(_ context.Context, u models.User) (string, error) { return u.ID, nil }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, userRepo.ErrUserNotFound
	}
	u := *s.user
	return &u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, userRepo.ErrUserNotFound
	}
	u := *s.user
	return &u, nil
}

func (s *stubUserRepo) UpdateFCMToken(_ context.Context, _, _ string) error { return nil }

func (s *stubUserRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	if s.user == nil || s.user.ID != id {
		return userRepo.ErrUserNotFound
	}
	s.user.TokenHash = hash
	return nil
}

func (s *stubUserRepo) ListFCMTokens(_ context.Context) ([]string, error) { return nil, nil }
func (s *stubUserRepo) Delete(_ context.Context, _ string) error          { return nil }

func TestVerifyPersistedTokenMatch(t *testing.T) {
	repo := &stubUserRepo{user: &models.User{ID: "u1", TokenHash: "hash-a"}}
	if !verifyPersistedToken(context.Background(), repo, "u1", "hash-a") {
		t.Error("matching persisted hash rejected")
	}
}

func TestVerifyPersistedTokenRejectsRevoked(t *testing.T) {
	// Logout clears the persisted hash; a replayed token must not pass the
	// fallback even though its signature is still valid.
	repo := &stubUserRepo{user: &models.User{ID: "u1", TokenHash: ""}}
	if verifyPersistedToken(context.Background(), repo, "u1", "hash-a") {
		t.Error("revoked session accepted on cache miss")
	}
}

func TestVerifyPersistedTokenRejectsMismatch(t *testing.T) {
	repo := &stubUserRepo{user: &models.User{ID: "u1", TokenHash: "hash-a"}}
	if verifyPersistedToken(context.Background(), repo, "u1", "hash-b") {
		t.Error("stale token accepted after a newer login")
	}
}

func TestVerifyPersistedTokenRejectsUnknownUser(t *testing.T) {
	repo := &stubUserRepo{}
	if verifyPersistedToken(context.Background(), repo, "ghost", "hash-a") {
		t.Error("unknown user accepted")
	}
}
