package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/database"
	"lumina-workers/internal/generator"
	"lumina-workers/internal/models"
	"lumina-workers/internal/session"
	"lumina-workers/internal/store"
)

// The session commands act on the persisted current session, the way a
// returning user would find it.

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(googleCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(brandCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(matchesCmd)

	matchesCmd.Flags().BoolVar(&showAll, "all", false, "Show every match (premium only)")
}

var showAll bool

func openSession(ctx context.Context) (*session.Session, func(), error) {
	cat, closeCatalog, err := openCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	rc, err := database.Connect(ctx, cfg.Database.Redis, 3)
	if err != nil {
		closeCatalog()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	closeFn := func() {
		_ = rc.Close()
		closeCatalog()
	}

	st := store.NewRedisStore(rc.Cmdable(), cfg.Store.KeyPrefix, log)
	gen := generator.NewService(
		generator.NewGeminiClient(cfg.APIs.Gemini),
		cat,
		generator.Options{SuggestedCreators: cfg.Ranking.SuggestedCreators},
		log,
	)
	s := session.New(st, gen, cat, session.Options{TopMatches: cfg.Ranking.TopMatches}, log)
	if err := s.Restore(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return s, closeFn, nil
}

// withSession runs fn against the restored session.
func withSession(fn func(ctx context.Context, s *session.Session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		s, closeFn, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return fn(ctx, s, args)
	}
}

func printUser(u *models.User) error {
	if jsonOut {
		return printJSON(u)
	}
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	plan := "free"
	if u.IsPremium {
		plan = "premium"
	}
	fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, plan)
	return nil
}

func printDashboard(d *models.DashboardData) error {
	if jsonOut {
		return printJSON(d)
	}
	st := d.Strategy
	fmt.Printf("North Star: %s\n", st.NorthStar)
	fmt.Printf("Platform:   %s (%s, %s)\n", st.PlatformName, st.TargetRange, catalog.TierLabelFromRange(st.TargetRange))
	fmt.Printf("Frequency:  %s\n", st.Frequency)
	fmt.Printf("Why:        %s\n\n", st.Reasoning)
	fmt.Printf("Brand story: %s\nMission: %s\nValues: %s\nTone: %s\n\n",
		d.Brand.Story, d.Brand.Mission, strings.Join(d.Brand.Values, ", "), d.Brand.Tone)
	fmt.Println("Content ideas:")
	for _, idea := range st.ContentIdeas {
		fmt.Printf("  - %s: %s\n", idea.Title, idea.Description)
	}
	fmt.Println()
	return printScored(d.Creators)
}

func readJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

var signupCmd = &cobra.Command{
	Use:   "signup [email] [password]",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		u, err := s.Signup(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printUser(u)
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Log in to an existing account",
	Args:  cobra.ExactArgs(2),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		u, err := s.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printUser(u)
	}),
}

var googleCmd = &cobra.Command{
	Use:   "login-google",
	Short: "Log in with the Google demo account",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		u, err := s.LoginWithGoogle(ctx)
		if err != nil {
			return err
		}
		return printUser(u)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		if err := s.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user and dashboard",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		if err := printUser(s.User()); err != nil {
			return err
		}
		if d := s.Dashboard(); d != nil && !jsonOut {
			fmt.Println()
			return printDashboard(d)
		}
		return nil
	}),
}

var onboardCmd = &cobra.Command{
	Use:   "onboard [form.json]",
	Short: "Generate a strategy from onboarding answers",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		var form models.FormData
		if err := readJSONFile(args[0], &form); err != nil {
			return err
		}
		d, err := s.CompleteOnboarding(ctx, form)
		if err != nil {
			return err
		}
		return printDashboard(d)
	}),
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate [goal description]",
	Short: "Re-analyze the goal and regenerate the strategy",
	Args:  cobra.MinimumNArgs(1),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		d, err := s.RegenerateStrategy(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printDashboard(d)
	}),
}

var brandCmd = &cobra.Command{
	Use:   "brand [brand.json]",
	Short: "Replace the brand profile of the current strategy",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		var brand models.BrandProfile
		if err := readJSONFile(args[0], &brand); err != nil {
			return err
		}
		d, err := s.UpdateBrand(ctx, brand)
		if err != nil {
			return err
		}
		return printDashboard(d)
	}),
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the current user to premium",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		u, err := s.Upgrade(ctx)
		if err != nil {
			return err
		}
		return printUser(u)
	}),
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite [influencer id]",
	Short: "Toggle a creator in the favorites",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		added, err := s.ToggleFavorite(ctx, args[0])
		if err != nil {
			return err
		}
		if added {
			fmt.Printf("Added %s to favorites.\n", args[0])
		} else {
			fmt.Printf("Removed %s from favorites.\n", args[0])
		}
		return nil
	}),
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite creators",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		favs := s.FavoriteInfluencers()
		if jsonOut {
			return printJSON(favs)
		}
		if len(favs) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		for _, inf := range favs {
			fmt.Printf("%s\t%s\t%s\t%s\n", inf.ID, inf.Name, inf.Handle, inf.Platform)
		}
		return nil
	}),
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show the creators matched to the current strategy",
	RunE: withSession(func(ctx context.Context, s *session.Session, args []string) error {
		if !showAll {
			top, err := s.StrategyMatches()
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(top)
			}
			return printScored(top)
		}

		revealed, err := s.SeeMoreMatches()
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(revealed)
		}
		if err := printScored(revealed.Matches); err != nil {
			return err
		}
		if revealed.UpgradeOffered {
			fmt.Printf("\n%d more matches are hidden. Run `lumina upgrade` to see them.\n", revealed.HiddenCount)
		}
		return nil
	}),
}

func exploreSession(ctx context.Context, s *session.Session, args []string) error {
	found, err := s.Explore(criteria)
	if err != nil {
		return err
	}
	facets, suggested := s.Facets()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"matches":         found,
			"locations":       facets.Locations,
			"niches":          facets.Niches,
			"suggestedNiches": suggested,
		})
	}
	fmt.Printf("Suggested niches: %s\n\n", strings.Join(suggested, ", "))
	return printScored(found)
}
