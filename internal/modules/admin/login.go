package admin

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitoapteka.kz/app/internal/shared/apperr"
)

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login checks the single administrator password against a bcrypt hash.
type Login struct {
	hash   []byte
	tokens *Tokens
}

func NewLogin(passwordHash string, tokens *Tokens) *Login {
	return &Login{hash: []byte(passwordHash), tokens: tokens}
}

func (l *Login) Enabled() bool {
	return l != nil && len(l.hash) > 0 && l.tokens != nil && len(l.tokens.secret) > 0
}

func (l *Login) Login(ctx context.Context, password string) (LoginResult, error) {
	_ = ctx
	if !l.Enabled() {
		return LoginResult{}, apperr.UnavailableErr("admin_login_disabled")
	}
	if err := bcrypt.CompareHashAndPassword(l.hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return LoginResult{}, apperr.UnauthorizedErr("invalid_credentials")
		}
		return LoginResult{}, apperr.Wrap(err)
	}

	tok, exp, err := l.tokens.Issue(RoleAdmin, RoleAdmin, TokenTTL)
	if err != nil {
		return LoginResult{}, apperr.Wrap(err)
	}
	return LoginResult{Token: tok, ExpiresAt: exp}, nil
}
