package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/database"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"
	"lumina-workers/internal/scoring"
)

var version = "dev"

var (
	verbose    bool
	jsonOut    bool
	configPath string
	cfg        *config.Config
	log        logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "lumina",
	Short:   "Influencer matching and strategy operator tool",
	Long:    "lumina inspects the influencer catalog, ranks creators against a brand and drives a strategy session stored in Redis.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		log = logger.NewStructured(level, "console")

		var err error
		if configPath != "" {
			cfg, err = config.LoadFromFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(browseCmd)
}

// --- catalog command ---

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the influencer catalog with tiers and filter facets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		all := cat.ListAll()
		facets := ranking.ComputeFacets(all)
		if jsonOut {
			return printJSON(map[string]interface{}{
				"influencers": all,
				"locations":   facets.Locations,
				"niches":      facets.Niches,
			})
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPLATFORM\tFOLLOWERS\tTIER\tLOCATION\tNICHE")
		for _, inf := range all {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				inf.ID, inf.Name, inf.Platform, inf.Followers, catalog.ClassifyTier(inf.Followers),
				inf.Location, strings.Join(inf.Niche, ", "))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nLocations: %s\n", strings.Join(facets.Locations, ", "))
		fmt.Printf("Niches: %s\n", strings.Join(facets.Niches, ", "))
		return nil
	},
}

// --- tier command ---

var tierCmd = &cobra.Command{
	Use:   "tier [followers...]",
	Short: "Classify follower counts such as 42.5K or 1.2M",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range args {
			fmt.Printf("%s\t%.0f\t%s\n", a, catalog.ParseFollowerCount(a), catalog.ClassifyTier(a))
		}
	},
}

// --- rank / explore / browse commands ---

var (
	industry string
	location string
	platform string
	goal     string
	strict   bool
	premium  bool
	mine     bool
	criteria ranking.Criteria
	seed     uint64
)

func addBrandFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&industry, "industry", "", "Brand industry")
	cmd.Flags().StringVar(&location, "location", "", "Brand location, e.g. \"Austin, USA\"")
	cmd.Flags().StringVar(&platform, "platform", "", "Strategy platform")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal id (awareness, launch, sales, ugc, event, community)")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&criteria.Search, "search", "", "Name or handle contains")
	cmd.Flags().StringVar(&criteria.Platform, "filter-platform", ranking.Any, "Only this platform")
	cmd.Flags().StringVar(&criteria.Tier, "tier", ranking.Any, "Only this tier (Nano, Micro, Macro, Mega)")
	cmd.Flags().StringVar(&criteria.Location, "filter-location", ranking.Any, "Location contains")
	cmd.Flags().StringVar(&criteria.Niche, "niche", "", "Niche tag contains")
}

func brandContext() scoring.BrandContext {
	return scoring.BrandContext{Industry: industry, Location: location}
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank creators for a strategy platform and goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if platform == "" {
			return fmt.Errorf("--platform is required")
		}
		cat, closeFn, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		ranked := ranking.RankForStrategy(cat.ListAll(), brandContext(), platform, models.GoalType(goal), strict)
		revealed := ranking.Reveal(ranked, premium, cfg.Ranking.TopMatches)
		if jsonOut {
			return printJSON(revealed)
		}
		if err := printScored(revealed.Matches); err != nil {
			return err
		}
		if revealed.UpgradeOffered {
			fmt.Printf("\n%d more matches available with premium.\n", revealed.HiddenCount)
		}
		return nil
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Score the whole catalog against a brand and filter it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mine {
			return withSession(exploreSession)(cmd, args)
		}

		cat, closeFn, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		ranked := ranking.RankForStrategy(cat.ListAll(), brandContext(), platform, models.GoalType(goal), false)
		filtered := ranking.Filter(ranked, criteria)
		if jsonOut {
			return printJSON(filtered)
		}
		if industry != "" {
			fmt.Printf("Suggested niches: %s\n\n", strings.Join(ranking.SuggestedNiches(industry), ", "))
		}
		return printScored(filtered)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List creators with seeded exploratory scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		s := seed
		if !cmd.Flags().Changed("seed") {
			s = cfg.Ranking.BrowseSeed
		}
		browsed := ranking.Filter(ranking.RankForBrowsing(cat.ListAll(), s), criteria)
		if jsonOut {
			return printJSON(browsed)
		}
		return printScored(browsed)
	},
}

func init() {
	addBrandFlags(rankCmd)
	rankCmd.Flags().BoolVar(&strict, "strict", true, "Only creators on the strategy platform")
	rankCmd.Flags().BoolVar(&premium, "premium", false, "Reveal the full ranking")

	addBrandFlags(exploreCmd)
	addFilterFlags(exploreCmd)
	exploreCmd.Flags().BoolVar(&mine, "mine", false, "Score against the current session's strategy instead of the brand flags")

	addFilterFlags(browseCmd)
	browseCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for exploratory scores (default from config)")
}

// --- helpers ---

func openCatalog(ctx context.Context) (*catalog.Catalog, func(), error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		cat, err := catalog.Open(ctx, cfg.Catalog, nil)
		return cat, func() {}, err
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Open(ctx, cfg.Catalog, pg)
	if err != nil {
		_ = pg.Close()
		return nil, nil, err
	}
	return cat, func() { _ = pg.Close() }, nil
}

func printScored(list []models.ScoredInfluencer) error {
	if len(list) == 0 {
		fmt.Println("No creators match.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tID\tNAME\tPLATFORM\tTIER\tWHY")
	for _, s := range list {
		why := strings.Join(s.MatchDetails, "; ")
		if why == "" {
			why = "General fit"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.MatchScore, s.ID, s.Name, s.Platform, catalog.ClassifyTier(s.Followers), why)
	}
	return w.Flush()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
