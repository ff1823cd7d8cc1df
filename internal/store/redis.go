package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps a users hash keyed by identity, one session record and
// favorites lists under a common prefix.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
	logger logger.Logger
}

func NewRedisStore(rdb redis.Cmdable, prefix string, log logger.Logger) *RedisStore {
	if prefix == "" {
		prefix = "lumina"
	}
	return &RedisStore{
		rdb:    rdb,
		prefix: prefix,
		logger: log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

type sessionRecord struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	StartedAt time.Time   `json:"startedAt"`
}

func (s *RedisStore) usersKey() string   { return s.prefix + ":users" }
func (s *RedisStore) sessionKey() string { return s.prefix + ":session" }

func (s *RedisStore) favoritesKey(identity string) string {
	if identity == "" {
		return s.prefix + ":favorites"
	}
	return s.prefix + ":favorites:" + identity
}

func displayName(identity string) string {
	name, _, _ := strings.Cut(identity, "@")
	return name
}

// profile loads a user record; a missing or malformed record is nil.
func (s *RedisStore) profile(ctx context.Context, identity string) (*models.UserProfile, error) {
	raw, err := s.rdb.HGet(ctx, s.usersKey(), identity).Result()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	var p models.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn("malformed user record ignored", map[string]interface{}{"identity": identity, "error": err})
		return nil, nil
	}
	if p.Email == "" {
		p.Email = identity
	}
	return &p, nil
}

func (s *RedisStore) putProfile(ctx context.Context, p *models.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.rdb.HSet(ctx, s.usersKey(), p.Email, data).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

func (s *RedisStore) startSession(ctx context.Context, user models.User) (*models.User, error) {
	data, err := json.Marshal(sessionRecord{User: user, Token: uuid.NewString(), StartedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.sessionKey(), data, 0).Err(); err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	return &user, nil
}

func (s *RedisStore) Login(ctx context.Context, identity, secret string) (*models.User, error) {
	p, err := s.profile(ctx, identity)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewAccountNotFoundError(identity)
	}
	if secret != "" && p.Password != "" && p.Password != secret {
		return nil, errors.NewBadCredentialError()
	}
	return s.startSession(ctx, models.User{Email: identity, Name: displayName(identity), IsPremium: p.IsPremium})
}

func (s *RedisStore) Signup(ctx context.Context, identity, secret string) (*models.User, error) {
	data, err := json.Marshal(&models.UserProfile{Email: identity, Password: secret})
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	created, err := s.rdb.HSetNX(ctx, s.usersKey(), identity, data).Result()
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	if !created {
		return nil, errors.NewAccountAlreadyExistsError(identity)
	}

	s.logger.Info("account created", map[string]interface{}{"identity": identity})
	return s.startSession(ctx, models.User{Email: identity, Name: displayName(identity)})
}

func (s *RedisStore) LoginWithGoogle(ctx context.Context) (*models.User, error) {
	p, err := s.profile(ctx, GoogleIdentity)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &models.UserProfile{Email: GoogleIdentity}
		if err := s.putProfile(ctx, p); err != nil {
			return nil, err
		}
	}
	return s.startSession(ctx, models.User{Email: GoogleIdentity, Name: GoogleName, IsPremium: p.IsPremium})
}

func (s *RedisStore) Logout(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.sessionKey()).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

func (s *RedisStore) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.rdb.Get(ctx, s.sessionKey()).Result()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.User.Email == "" {
		s.logger.Warn("malformed session record ignored", map[string]interface{}{"error": err})
		return nil, nil
	}
	return &rec.User, nil
}

// UpgradeToPremium marks the account premium and, when it is the current
// session's account, the session too. Any other identity is not found.
func (s *RedisStore) UpgradeToPremium(ctx context.Context, identity string) (*models.User, error) {
	p, err := s.profile(ctx, identity)
	if err != nil {
		return nil, err
	}
	if p != nil {
		p.IsPremium = true
		if err := s.putProfile(ctx, p); err != nil {
			return nil, err
		}
	}

	current, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil || current.Email != identity {
		return nil, errors.NewAccountNotFoundError(identity)
	}

	current.IsPremium = true
	return s.startSession(ctx, *current)
}

func (s *RedisStore) SaveUserData(ctx context.Context, identity string, form *models.FormData, dashboard *models.DashboardData) error {
	p, err := s.profile(ctx, identity)
	if err != nil || p == nil {
		return err
	}
	p.FormData = form
	p.DashboardData = dashboard
	return s.putProfile(ctx, p)
}

func (s *RedisStore) UserData(ctx context.Context, identity string) (*models.UserProfile, error) {
	return s.profile(ctx, identity)
}

func (s *RedisStore) Favorites(ctx context.Context, identity string) ([]string, error) {
	raw, err := s.rdb.Get(ctx, s.favoritesKey(identity)).Result()
	if stderrors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("malformed favorites ignored", map[string]interface{}{"identity": identity, "error": err})
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *RedisStore) SaveFavorites(ctx context.Context, identity string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.rdb.Set(ctx, s.favoritesKey(identity), data, 0).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}
