// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues access tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordLen = 72

// Token is an issued access token and the instant it stops being accepted.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	ttl         time.Duration
	now         func() time.Time
	cost        int
	logger      logging.Logger
}

// NewUserService constructs a UserService. now is the clock used for token
// issuance; pass time.Now outside of tests.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, codec *auth.Codec, ttl time.Duration, now func() time.Time, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		codec:       codec,
		ttl:         ttl,
		now:         now,
		cost:        bcrypt.DefaultCost,
		logger:      l.With("module", "users"),
	}
}

// Register creates a new user with a bcrypt hash of password.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}
	if len(password) > maxPasswordLen {
		return nil, fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, maxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user", u.UserName)
	return u, nil
}

// Login checks the password against the stored hash and, on success, returns a
// token for the user. Unknown users and wrong passwords are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*Token, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keep the response time close to the known-user path
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	now := s.now()
	value, err := s.codec.Issue(user.UserName, now, s.ttl)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, common.ErrorInternal
	}
	return &Token{Value: value, ExpiresAt: now.Add(s.ttl).Truncate(time.Second)}, nil
}

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("gophposts"), bcrypt.DefaultCost)
	return h
})
