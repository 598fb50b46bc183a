// Package auth implements the mock login gate, its HTTP endpoint and the
// client the CLI uses to reach it.
//
// The gate is a stand-in credential check for demos and UI testing, not a
// real authentication boundary.
package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manav03panchal/lifedash/internal/config"
	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
)

// TokenPrefix starts every issued token.
const TokenPrefix = "mock-jwt-token-"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is an allow-list entry.
type Account struct {
	User     model.User
	Password string
}

// DefaultAccounts is the fixed allow-list.
var DefaultAccounts = []Account{
	{
		User:     model.User{ID: "1", Email: "demo@example.com", Name: "Demo User", Role: model.RoleUser},
		Password: "password123",
	},
	{
		User:     model.User{ID: "2", Email: "admin@example.com", Name: "Admin User", Role: model.RoleAdmin},
		Password: "admin123",
	},
}

// Gate checks credentials against the allow-list after a simulated delay.
type Gate struct {
	delay    time.Duration
	accounts []Account
	now      func() time.Time
}

// NewGate creates a gate with the given delay. Delays below
// config.MinAuthDelay are raised to it.
func NewGate(delay time.Duration) *Gate {
	if delay < config.MinAuthDelay {
		delay = config.MinAuthDelay
	}
	return &Gate{
		delay:    delay,
		accounts: DefaultAccounts,
		now:      time.Now,
	}
}

// Delay returns the simulated latency applied to every call.
func (g *Gate) Delay() time.Duration {
	return g.delay
}

// Pause waits out the simulated latency, or returns early with the
// context's error.
func (g *Gate) Pause(ctx context.Context) error {
	t := time.NewTimer(g.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Login waits out the simulated latency, then checks creds against the
// allow-list. Either field missing is a validation error; any mismatch is
// the same invalid credentials error.
func (g *Gate) Login(ctx context.Context, creds Credentials) (*model.Session, error) {
	if err := g.Pause(ctx); err != nil {
		return nil, errors.Internal("auth.Login", err)
	}
	return g.check(ctx, creds)
}

func (g *Gate) check(ctx context.Context, creds Credentials) (*model.Session, error) {
	log := logging.FromContext(ctx).With(logging.KeyEmail, logging.MaskEmail(creds.Email))

	if creds.Email == "" || creds.Password == "" {
		log.Debug("login rejected: missing credentials")
		return nil, errors.CredentialsRequired()
	}

	for _, acct := range g.accounts {
		if acct.User.Email == creds.Email && acct.Password == creds.Password {
			log.Info("login succeeded", logging.KeyUserID, acct.User.ID)
			return &model.Session{
				Token: Token(acct.User.ID, g.now()),
				User:  acct.User,
			}, nil
		}
	}

	log.Info("login rejected: invalid credentials")
	return nil, errors.InvalidCredentials()
}

// Token builds the synthetic token for a user at the given time.
func Token(userID string, at time.Time) string {
	return fmt.Sprintf("%s%s-%d", TokenPrefix, userID, at.UnixMilli())
}

// ParseToken extracts the user id and issue time from a token built by Token.
func ParseToken(token string) (userID string, issuedAt time.Time, ok bool) {
	rest, found := strings.CutPrefix(token, TokenPrefix)
	if !found {
		return "", time.Time{}, false
	}
	i := strings.LastIndexByte(rest, '-')
	if i <= 0 || i == len(rest)-1 {
		return "", time.Time{}, false
	}
	millis, err := strconv.ParseInt(rest[i+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, false
	}
	return rest[:i], time.UnixMilli(millis), true
}

// VerifySession checks that a stored session's token was issued to its user
// and returns when it was issued.
func VerifySession(s *model.Session) (time.Time, error) {
	id, issuedAt, ok := ParseToken(s.Token)
	if !ok || id != s.User.ID {
		return time.Time{}, errors.NewUserErrorFor(errors.ErrNotAuthenticated,
			"Stored session does not match its token",
			"Run 'lifedash login' again")
	}
	return issuedAt, nil
}
