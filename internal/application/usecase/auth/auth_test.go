package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domainerror.ErrUsernameAlreadyExists
	}
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	issued  int
	revoked map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{revoked: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, username string) (*adapter.TokenPair, error) {
	s.issued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s-%d", username, s.issued),
		RefreshToken: fmt.Sprintf("refresh-%s-%d", username, s.issued),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token == "" || token == "garbage" {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{
		UserID:    uuid.New(),
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.revoked[token], nil
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration issues tokens", func(t *testing.T) {
		repo := newMemUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, RegisterUserInput{Username: "alice", Password: "Sup3rSecret!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if out.User.PasswordHash != "hashed:Sup3rSecret!" {
			t.Errorf("plain password must never be stored, got %q", out.User.PasswordHash)
		}
		if _, err := repo.FindByUsername(ctx, "alice"); err != nil {
			t.Errorf("user not persisted: %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := newMemUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		if _, err := uc.Execute(ctx, RegisterUserInput{Username: "alice", Password: "Sup3rSecret!"}); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := uc.Execute(ctx, RegisterUserInput{Username: "alice", Password: "An0therSecret!"})
		if !errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got %v", err)
		}
	})

	t.Run("invalid usernames rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newMemUserRepo(), fakePasswordService{}, newFakeTokenService())
		for _, username := range []string{"", "ab", "has space", "way@toostrange"} {
			_, err := uc.Execute(ctx, RegisterUserInput{Username: username, Password: "Sup3rSecret!"})
			if !errors.Is(err, domainerror.ErrInvalidUsername) {
				t.Errorf("username %q: expected ErrInvalidUsername, got %v", username, err)
			}
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newMemUserRepo(), fakePasswordService{}, newFakeTokenService())
		_, err := uc.Execute(ctx, RegisterUserInput{Username: "alice", Password: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*LoginUserUseCase, *memUserRepo) {
		t.Helper()
		repo := newMemUserRepo()
		register := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		if _, err := register.Execute(ctx, RegisterUserInput{Username: "alice", Password: "Sup3rSecret!"}); err != nil {
			t.Fatalf("fixture registration failed: %v", err)
		}
		return NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService()), repo
	}

	t.Run("correct credentials", func(t *testing.T) {
		uc, _ := setup(t)
		out, err := uc.Execute(ctx, LoginUserInput{Username: "alice", Password: "Sup3rSecret!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Username != "alice" || out.AccessToken == "" {
			t.Errorf("unexpected login output: %+v", out)
		}
	})

	t.Run("wrong password and unknown user yield the same error", func(t *testing.T) {
		uc, _ := setup(t)
		_, wrongPass := uc.Execute(ctx, LoginUserInput{Username: "alice", Password: "nope-nope"})
		_, unknown := uc.Execute(ctx, LoginUserInput{Username: "mallory", Password: "Sup3rSecret!"})
		if !errors.Is(wrongPass, domainerror.ErrInvalidCredentials) || !errors.Is(unknown, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for both, got %v / %v", wrongPass, unknown)
		}
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotation revokes the old token", func(t *testing.T) {
		tokens := newFakeTokenService()
		tokens.issued = 1 // the presented token is the first pair minted
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-alice-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RefreshToken == "refresh-alice-1" {
			t.Error("refresh token must rotate")
		}
		if out.RefreshToken != "refresh-alice-2" {
			t.Errorf("expected the next minted token, got %q", out.RefreshToken)
		}
		if !tokens.revoked["refresh-alice-1"] {
			t.Error("old refresh token must be invalidated")
		}
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		tokens := newFakeTokenService()
		tokens.revoked["refresh-alice-1"] = true
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-alice-1"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())
		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "garbage"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestLogoutUser(t *testing.T) {
	tokens := newFakeTokenService()
	uc := NewLogoutUserUseCase(tokens)

	out, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh-alice-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message == "" {
		t.Error("expected a confirmation message")
	}
	if !tokens.revoked["refresh-alice-1"] {
		t.Error("logout must invalidate the refresh token")
	}
}
