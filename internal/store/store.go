// Package store persists accounts, the current session, per-user profiles
// and favorites.
package store

import (
	"context"

	"lumina-workers/internal/models"
)

// GoogleIdentity is the account provisioned by LoginWithGoogle.
const (
	GoogleIdentity = "demo.user@gmail.com"
	GoogleName     = "Demo User"
)

// AuthStore manages accounts and the single current session.
type AuthStore interface {
	Login(ctx context.Context, identity, secret string) (*models.User, error)
	Signup(ctx context.Context, identity, secret string) (*models.User, error)
	LoginWithGoogle(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	// CurrentUser returns nil without error when nobody is logged in.
	CurrentUser(ctx context.Context) (*models.User, error)
	UpgradeToPremium(ctx context.Context, identity string) (*models.User, error)
	// SaveUserData is a no-op for unknown identities.
	SaveUserData(ctx context.Context, identity string, form *models.FormData, dashboard *models.DashboardData) error
	// UserData returns nil without error for unknown identities.
	UserData(ctx context.Context, identity string) (*models.UserProfile, error)
}

// FavoritesStore keeps favorite influencer ids. An empty identity addresses
// the install-level set used before login.
type FavoritesStore interface {
	Favorites(ctx context.Context, identity string) ([]string, error)
	SaveFavorites(ctx context.Context, identity string, ids []string) error
}

// Store is everything the session persists through.
type Store interface {
	AuthStore
	FavoritesStore
}
