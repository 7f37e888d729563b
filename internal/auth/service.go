package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymtracker/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymtracker-session||"
	tokensSetKey     = "gymtracker-sessions"
	tokenLength      = 35
)

type accountStore interface {
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, account Account) error
}

type Service struct {
	accounts    accountStore
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	accounts accountStore,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		accounts:       accounts,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Register(ctx context.Context, reg Registration) (*Account, error) {
	passwordHash, err := pkg.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := Account{
		ID:           uuid.NewString(),
		Email:        pkg.NormalizeEmail(reg.Email),
		Name:         strings.TrimSpace(reg.Name),
		PasswordHash: passwordHash,
	}
	if err := as.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (*Session, error) {
	account, err := as.accounts.AccountByEmail(ctx, pkg.NormalizeEmail(creds.Email))
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, account.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(createdAt, account.ID), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		UserID:    account.ID,
		CreatedAt: createdAt,
	}, nil
}

// Logout removes the session; returns false if there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		val, err := as.redisClient.Get(ctx, sessionKey).Result()
		if errors.Is(err, redis.Nil) {
			// expired by redis already, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAt, _, err := parseSessionValue(val)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}
	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

func sessionValue(createdAt time.Time, userID string) string {
	return strconv.FormatInt(createdAt.Unix(), 10) + "|" + userID
}

func parseSessionValue(val string) (time.Time, string, error) {
	createdAtStr, userID, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return time.Time{}, "", ErrSessionMalformed
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %w", ErrSessionMalformed, err)
	}
	return time.Unix(createdAtUnix, 0), userID, nil
}
