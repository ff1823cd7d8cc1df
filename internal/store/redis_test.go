package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test helpers
// ==========================

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, NewRedisStore(rdb, "test", logger.NewTestLogger(t))
}

// ==========================
// Accounts
// ==========================

func TestSignupThenLogin(t *testing.T) {
	_, s := setupMiniRedis(t)
	ctx := context.Background()

	u, err := s.Signup(ctx, "ana@shop.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.User{Email: "ana@shop.io", Name: "ana"}, *u)

	_, err = s.Signup(ctx, "ana@shop.io", "other")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAccountAlreadyExists))

	require.NoError(t, s.Logout(ctx))
	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	u, err = s.Login(ctx, "ana@shop.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Name)

	cur, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, cur)
}

func TestLogin_Failures(t *testing.T) {
	_, s := setupMiniRedis(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, "ana@shop.io", "pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		identity string
		secret   string
		code     errors.ErrorCode
	}{
		{"unknown account", "bob@shop.io", "pw", errors.ErrCodeAccountNotFound},
		{"wrong password", "ana@shop.io", "nope", errors.ErrCodeBadCredential},
		{"empty secret skips the check", "ana@shop.io", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(ctx, tt.identity, tt.secret)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoginWithGoogle_ProvisionsOnce(t *testing.T) {
	mr, s := setupMiniRedis(t)
	ctx := context.Background()

	u, err := s.LoginWithGoogle(ctx)
	require.NoError(t, err)
	assert.Equal(t, GoogleIdentity, u.Email)
	assert.Equal(t, GoogleName, u.Name)
	assert.NotEmpty(t, mr.HGet("test:users", GoogleIdentity))

	_, err = s.UpgradeToPremium(ctx, GoogleIdentity)
	require.NoError(t, err)

	u, err = s.LoginWithGoogle(ctx)
	require.NoError(t, err)
	assert.True(t, u.IsPremium)
}

func TestUpgradeToPremium(t *testing.T) {
	_, s := setupMiniRedis(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "ana@shop.io", "pw")
	require.NoError(t, err)

	_, err = s.UpgradeToPremium(ctx, "someone@else.io")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAccountNotFound))

	u, err := s.UpgradeToPremium(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.True(t, u.IsPremium)

	p, err := s.UserData(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.True(t, p.IsPremium)
}

// ==========================
// Profiles
// ==========================

func TestSaveUserData(t *testing.T) {
	_, s := setupMiniRedis(t)
	ctx := context.Background()

	form := &models.FormData{BusinessName: "Bean There", Goal: models.GoalSales}
	dash := &models.DashboardData{Strategy: models.Strategy{PlatformName: "TikTok"}}

	require.NoError(t, s.SaveUserData(ctx, "ghost@shop.io", form, dash))
	p, err := s.UserData(ctx, "ghost@shop.io")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = s.Signup(ctx, "ana@shop.io", "pw")
	require.NoError(t, err)
	require.NoError(t, s.SaveUserData(ctx, "ana@shop.io", form, dash))

	p, err = s.UserData(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.Equal(t, form, p.FormData)
	assert.Equal(t, "TikTok", p.DashboardData.Strategy.PlatformName)
	assert.Equal(t, "pw", p.Password)
}

func TestMalformedRecordsAreEmpty(t *testing.T) {
	mr, s := setupMiniRedis(t)
	ctx := context.Background()

	mr.HSet("test:users", "ana@shop.io", "{not json")
	require.NoError(t, mr.Set("test:session", "[]"))
	require.NoError(t, mr.Set("test:favorites", "oops"))

	p, err := s.UserData(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = s.Login(ctx, "ana@shop.io", "pw")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAccountNotFound))

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	favs, err := s.Favorites(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestLegacyContentIdeasNormalizedOnLoad(t *testing.T) {
	mr, s := setupMiniRedis(t)

	legacy := map[string]interface{}{
		"email": "ana@shop.io",
		"dashboardData": map[string]interface{}{
			"strategy": map[string]interface{}{"contentIdeas": []interface{}{"Morning routine"}},
		},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	mr.HSet("test:users", "ana@shop.io", string(raw))

	p, err := s.UserData(context.Background(), "ana@shop.io")
	require.NoError(t, err)
	require.Len(t, p.DashboardData.Strategy.ContentIdeas, 1)
	assert.Equal(t, models.LegacyIdeaDescription, p.DashboardData.Strategy.ContentIdeas[0].Description)
}

// ==========================
// Favorites
// ==========================

func TestFavorites_PerIdentity(t *testing.T) {
	mr, s := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFavorites(ctx, "ana@shop.io", []string{"1", "4"}))
	require.NoError(t, s.SaveFavorites(ctx, "", []string{"7"}))

	favs, err := s.Favorites(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, favs)

	favs, err = s.Favorites(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, favs)

	favs, err = s.Favorites(ctx, "bob@shop.io")
	require.NoError(t, err)
	assert.Equal(t, []string{}, favs)

	assert.True(t, mr.Exists("test:favorites:ana@shop.io"))
}

// ==========================
// Redis failures
// ==========================

func TestStoreUnavailable(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test", logger.NewNoOpLogger())
	ctx := context.Background()
	boom := stderrors.New("connection refused")

	mock.ExpectHGet("test:users", "ana@shop.io").SetErr(boom)
	_, err := s.Login(ctx, "ana@shop.io", "pw")
	assert.True(t, errors.HasCode(err, errors.ErrCodeStoreUnavailable))
	assert.ErrorIs(t, err, boom)

	mock.ExpectGet("test:session").SetErr(boom)
	_, err = s.CurrentUser(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeStoreUnavailable))

	mock.ExpectGet("test:favorites:ana@shop.io").RedisNil()
	favs, err := s.Favorites(ctx, "ana@shop.io")
	require.NoError(t, err)
	assert.Empty(t, favs)

	assert.NoError(t, mock.ExpectationsWereMet())
}
