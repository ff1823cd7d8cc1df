// Package session owns the onboarding answers, the generated dashboard, the
// logged-in user and the favorites of one user session.
package session

import (
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/generator"
	"lumina-workers/internal/models"
	"lumina-workers/internal/onboarding"
	"lumina-workers/internal/ranking"
	"lumina-workers/internal/scoring"
	"lumina-workers/internal/store"
)

// Options tunes the views a session produces.
type Options struct {
	// TopMatches is how many strategy matches are shown without premium.
	TopMatches int
	// Facets is shared between sessions over the same catalog. Optional.
	Facets *ranking.FacetIndex
}

// Session is safe for concurrent use. State reads never block on an
// in-flight generation; generation commits its result atomically.
type Session struct {
	store     store.Store
	generator generator.StrategyGenerator
	catalog   *catalog.Catalog
	facets    *ranking.FacetIndex
	top       int
	logger    logger.Logger

	generating atomic.Bool

	// favMu serializes ToggleFavorite; its store call runs without mu held.
	favMu sync.Mutex

	mu        sync.RWMutex
	user      *models.User
	form      models.FormData
	dashboard *models.DashboardData
	favorites []string
}

func New(st store.Store, gen generator.StrategyGenerator, cat *catalog.Catalog, opts Options, log logger.Logger) *Session {
	if opts.TopMatches <= 0 {
		opts.TopMatches = ranking.DefaultTopMatches
	}
	if opts.Facets == nil {
		opts.Facets = ranking.NewFacetIndex()
	}
	return &Session{
		store:     st,
		generator: gen,
		catalog:   cat,
		facets:    opts.Facets,
		top:       opts.TopMatches,
		logger:    log.WithFields(map[string]interface{}{"component": "session"}),
		form:      onboarding.InitialFormData(),
	}
}

// Restore picks up the persisted current session, if any, together with its
// profile and favorites.
func (s *Session) Restore(ctx context.Context) error {
	u, err := s.store.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		return s.loadFavorites(ctx, "")
	}
	return s.adopt(ctx, u)
}

func (s *Session) Login(ctx context.Context, identity, secret string) (*models.User, error) {
	if err := validateCredentials(identity, secret); err != nil {
		return nil, err
	}
	u, err := s.store.Login(ctx, strings.TrimSpace(identity), secret)
	if err != nil {
		return nil, err
	}
	return s.afterAuth(ctx, u)
}

func (s *Session) Signup(ctx context.Context, identity, secret string) (*models.User, error) {
	if err := validateCredentials(identity, secret); err != nil {
		return nil, err
	}
	u, err := s.store.Signup(ctx, strings.TrimSpace(identity), secret)
	if err != nil {
		return nil, err
	}
	return s.afterAuth(ctx, u)
}

func (s *Session) LoginWithGoogle(ctx context.Context) (*models.User, error) {
	u, err := s.store.LoginWithGoogle(ctx)
	if err != nil {
		return nil, err
	}
	return s.afterAuth(ctx, u)
}

// Logout ends the session and resets the onboarding answers and dashboard.
// Favorites switch back to the install-level set.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Logout(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.form = onboarding.InitialFormData()
	s.dashboard = nil
	s.mu.Unlock()

	return s.loadFavorites(ctx, "")
}

func validateCredentials(identity, secret string) error {
	if strings.TrimSpace(identity) == "" {
		return errors.NewValidationError("identity", "email is required")
	}
	if secret == "" {
		return errors.NewValidationError("secret", "password is required")
	}
	return nil
}

func (s *Session) afterAuth(ctx context.Context, u *models.User) (*models.User, error) {
	if err := s.adopt(ctx, u); err != nil {
		return nil, err
	}
	return s.User(), nil
}

// adopt makes u the session user and loads whatever it has persisted.
func (s *Session) adopt(ctx context.Context, u *models.User) error {
	profile, err := s.store.UserData(ctx, u.Email)
	if err != nil {
		return err
	}

	s.mu.Lock()
	cp := *u
	s.user = &cp
	if profile != nil {
		if profile.FormData != nil {
			s.form = profile.FormData.Clone()
		}
		if profile.DashboardData != nil {
			s.dashboard = profile.DashboardData.Clone()
		}
	}
	s.mu.Unlock()

	return s.loadFavorites(ctx, u.Email)
}

func (s *Session) loadFavorites(ctx context.Context, identity string) error {
	ids, err := s.store.Favorites(ctx, identity)
	if err != nil {
		return err
	}
	// Ids no longer in the catalog are dropped on load.
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.catalog.Contains(id) && !slices.Contains(kept, id) {
			kept = append(kept, id)
		}
	}

	s.mu.Lock()
	s.favorites = kept
	s.mu.Unlock()
	return nil
}

// User returns a copy of the logged-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Session) IsPremium() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsPremium
}

func (s *Session) FormData() models.FormData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form.Clone()
}

// Dashboard returns a copy of the current dashboard, or nil before the first
// generation.
func (s *Session) Dashboard() *models.DashboardData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard.Clone()
}

// SetFormData records in-progress wizard answers. Nothing is persisted until
// a strategy is generated.
// The answers cannot change while a strategy operation is in flight.
func (s *Session) SetFormData(f models.FormData) error {
	if s.generating.Load() {
		return errors.NewOperationInProgressError("set form data")
	}
	s.mu.Lock()
	s.form = f.Clone()
	s.mu.Unlock()
	return nil
}

// IsGenerating reports whether a strategy operation is in flight.
func (s *Session) IsGenerating() bool {
	return s.generating.Load()
}

func (s *Session) begin(operation string) error {
	if !s.generating.CompareAndSwap(false, true) {
		return errors.NewOperationInProgressError(operation)
	}
	return nil
}

func (s *Session) end() {
	s.generating.Store(false)
}

// CompleteOnboarding generates the first dashboard from the finished wizard.
func (s *Session) CompleteOnboarding(ctx context.Context, f models.FormData) (*models.DashboardData, error) {
	if err := s.begin("generate"); err != nil {
		return nil, err
	}
	defer s.end()

	if err := onboarding.ValidateComplete(f); err != nil {
		return nil, err
	}

	form := f.Clone()
	dash, err := s.generator.GenerateStrategy(ctx, form)
	if err != nil {
		return nil, errors.NewGenerationFailedError("generate", err)
	}

	s.commit(ctx, form, dash)
	return dash.Clone(), nil
}

// RegenerateStrategy analyzes a new goal description, folds the result into
// the answers and regenerates the dashboard. Nothing is committed unless both
// steps succeed.
func (s *Session) RegenerateStrategy(ctx context.Context, goalDescription string) (*models.DashboardData, error) {
	if err := s.begin("regenerate"); err != nil {
		return nil, err
	}
	defer s.end()

	if err := onboarding.ValidateGoalText(goalDescription); err != nil {
		return nil, err
	}

	analysis, err := s.generator.AnalyzeGoal(ctx, goalDescription)
	if err != nil {
		return nil, errors.NewGenerationFailedError("regenerate", err)
	}

	form := s.FormData()
	form.Goal = analysis.Category
	form.GoalDescription = goalDescription
	form.RefinedGoal = analysis.RefinedTitle

	dash, err := s.generator.GenerateStrategy(ctx, form)
	if err != nil {
		return nil, errors.NewGenerationFailedError("regenerate", err)
	}

	s.mu.Lock()
	s.form.Goal = form.Goal
	s.form.GoalDescription = form.GoalDescription
	s.form.RefinedGoal = form.RefinedGoal
	s.dashboard = dash.Clone()
	s.mu.Unlock()

	s.persist(ctx)
	return dash.Clone(), nil
}

func (s *Session) commit(ctx context.Context, form models.FormData, dash *models.DashboardData) {
	s.mu.Lock()
	s.form = form
	s.dashboard = dash.Clone()
	s.mu.Unlock()

	s.persist(ctx)
}

// persist writes the current answers and dashboard for the logged-in user.
// A failed write leaves the in-memory state as the source of truth.
func (s *Session) persist(ctx context.Context) {
	s.mu.RLock()
	if s.user == nil {
		s.mu.RUnlock()
		return
	}
	identity := s.user.Email
	form := s.form.Clone()
	dash := s.dashboard.Clone()
	s.mu.RUnlock()

	if err := s.store.SaveUserData(ctx, identity, &form, dash); err != nil {
		s.logger.Warn("failed to persist user data", map[string]interface{}{
			"identity": identity,
			"error":    err.Error(),
		})
	}
}

// UpdateBrand replaces the brand profile of the current dashboard.
func (s *Session) UpdateBrand(ctx context.Context, brand models.BrandProfile) (*models.DashboardData, error) {
	s.mu.Lock()
	if s.dashboard == nil {
		s.mu.Unlock()
		return nil, errors.NewStrategyMissingError()
	}
	s.dashboard.Brand = brand
	out := s.dashboard.Clone()
	s.mu.Unlock()

	s.persist(ctx)
	return out, nil
}

// Upgrade marks the logged-in user premium.
func (s *Session) Upgrade(ctx context.Context) (*models.User, error) {
	current := s.User()
	if current == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	u, err := s.store.UpgradeToPremium(ctx, current.Email)
	if err != nil {
		if errors.GetErrorCategory(errors.CodeOf(err)) == "AUTHENTICATION" {
			return nil, err
		}
		return nil, errors.NewPaymentFailedError(err)
	}

	s.mu.Lock()
	cp := *u
	s.user = &cp
	s.mu.Unlock()

	s.logger.Info("user upgraded to premium", map[string]interface{}{"identity": u.Email})
	return s.User(), nil
}

// ToggleFavorite adds or removes id and reports whether it is now a favorite.
// The in-memory set only changes once the store accepted the new set.
func (s *Session) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if !s.catalog.Contains(id) {
		return false, errors.NewUnknownInfluencerError(id)
	}

	s.favMu.Lock()
	defer s.favMu.Unlock()

	s.mu.RLock()
	next := slices.Clone(s.favorites)
	identity := ""
	if s.user != nil {
		identity = s.user.Email
	}
	s.mu.RUnlock()

	idx := slices.Index(next, id)
	added := idx < 0
	if added {
		next = append(next, id)
	} else {
		next = slices.Delete(next, idx, idx+1)
	}

	if err := s.store.SaveFavorites(ctx, identity, next); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if (s.user == nil && identity != "") || (s.user != nil && s.user.Email != identity) {
		// The account changed during the save; its favorites were reloaded.
		return added, nil
	}
	s.favorites = next
	return added, nil
}

// Favorites returns favorite ids in the order they were added.
func (s *Session) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// FavoriteInfluencers resolves favorites against the catalog, in catalog
// order.
func (s *Session) FavoriteInfluencers() []models.Influencer {
	favs := s.Favorites()
	out := make([]models.Influencer, 0, len(favs))
	for _, inf := range s.catalog.ListAll() {
		if slices.Contains(favs, inf.ID) {
			out = append(out, inf)
		}
	}
	return out
}

func (s *Session) rank(strict bool) ([]models.ScoredInfluencer, error) {
	s.mu.RLock()
	if s.dashboard == nil {
		s.mu.RUnlock()
		return nil, errors.NewStrategyMissingError()
	}
	brand := scoring.ContextFromForm(s.form)
	platform := s.dashboard.Strategy.PlatformName
	goal := s.form.Goal
	s.mu.RUnlock()

	return ranking.RankForStrategy(s.catalog.ListAll(), brand, platform, goal, strict), nil
}

// StrategyMatches is the short list shown next to the strategy: creators on
// the strategy's platform, best first, capped at the free view size.
func (s *Session) StrategyMatches() ([]models.ScoredInfluencer, error) {
	ranked, err := s.rank(true)
	if err != nil {
		return nil, err
	}
	if len(ranked) > s.top {
		ranked = ranked[:s.top]
	}
	return ranked, nil
}

// SeeMoreMatches reveals the full strategy ranking to premium users and an
// upgrade offer to everyone else.
func (s *Session) SeeMoreMatches() (ranking.Revealed, error) {
	ranked, err := s.rank(true)
	if err != nil {
		return ranking.Revealed{}, err
	}
	return ranking.Reveal(ranked, s.IsPremium(), s.top), nil
}

// Explore scores the whole catalog against the current strategy and applies
// the given filters.
func (s *Session) Explore(c ranking.Criteria) ([]models.ScoredInfluencer, error) {
	ranked, err := s.rank(false)
	if err != nil {
		return nil, err
	}
	return ranking.Filter(ranked, c), nil
}

// Facets returns the filter choices plus niche suggestions for the current
// industry.
func (s *Session) Facets() (ranking.Facets, []string) {
	s.mu.RLock()
	industry := s.form.Industry
	s.mu.RUnlock()
	return s.facets.For(s.catalog), ranking.SuggestedNiches(industry)
}
