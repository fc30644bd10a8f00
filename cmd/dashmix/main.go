// Package main provides the dashmix CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gauthierbraillon/dashmix/internal/aggregator"
	"github.com/gauthierbraillon/dashmix/internal/config"
	"github.com/gauthierbraillon/dashmix/internal/display"
	"github.com/gauthierbraillon/dashmix/internal/health"
	"github.com/gauthierbraillon/dashmix/internal/movies"
	"github.com/gauthierbraillon/dashmix/internal/news"
	"github.com/gauthierbraillon/dashmix/internal/social"
	"github.com/gauthierbraillon/dashmix/internal/store"
	"github.com/gauthierbraillon/dashmix/internal/userdata"
)

var version = "dev"

const commandTimeout = 60 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags-injected version and falls back to
// module build info so plain `go install` still reports a real version.
func resolveVersion(v string, info *debug.BuildInfo) string {
	if v != "dev" {
		return v
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

// app bundles the wired-up components every subcommand needs.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *store.Store
	user   *userdata.State
	fmtr   *display.TerminalFormatter
}

// newApp loads configuration and wires clients, store, and user state.
func newApp() (*app, error) {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	newsOpts := []news.ClientOption{news.WithLogger(logger)}
	if cfg.MediastackURL != "" {
		newsOpts = append(newsOpts, news.WithBaseURL(cfg.MediastackURL))
	}
	newsClient := news.NewClient(cfg.MediastackKey, health.NewTracker(), newsOpts...)

	movieOpts := []movies.ClientOption{movies.WithLogger(logger)}
	if cfg.OMDbURL != "" {
		movieOpts = append(movieOpts, movies.WithBaseURL(cfg.OMDbURL))
	}
	movieClient := movies.NewClient(cfg.OMDbKey, movieOpts...)

	socialOpts := []social.ClientOption{social.WithLogger(logger)}
	if cfg.SocialURL != "" {
		socialOpts = append(socialOpts, social.WithBaseURL(cfg.SocialURL))
	}
	socialClient := social.NewClient(socialOpts...)

	files := userdata.NewFileStore(cfg.ConfigDir, userdata.WithFileStoreLogger(logger))
	user := userdata.NewState(userdata.WithSaveHook(files.Save))
	user.Restore(files.Load())

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store.New(newsClient, movieClient, socialClient, store.WithLogger(logger)),
		user:   user,
		fmtr:   display.NewTerminalFormatter(),
	}, nil
}

// loadPages loads up to n pages from every provider, all three concurrently
// per round. Later rounds only fetch providers that still report more data.
func (a *app) loadPages(ctx context.Context, n int) {
	prefs := a.user.Preferences()
	for page := 1; page <= n; page++ {
		snap := a.store.Snapshot()
		var g errgroup.Group
		if page == 1 || (snap.News.HasMore && !snap.News.Loading) {
			g.Go(func() error {
				a.store.LoadNews(ctx, prefs.Categories, prefs.NewsCountries, page)
				return nil
			})
		}
		if page == 1 || (snap.Movies.HasMore && !snap.Movies.Loading) {
			g.Go(func() error {
				a.store.LoadMovies(ctx, prefs.MovieGenres, page)
				return nil
			})
		}
		if page == 1 || (snap.Social.HasMore && !snap.Social.Loading) {
			g.Go(func() error {
				a.store.LoadSocial(ctx, prefs.SocialHashtags, page)
				return nil
			})
		}
		_ = g.Wait()
	}
}

// composeInput assembles the merge engine input from store and user state.
func (a *app) composeInput() aggregator.Input {
	snap := a.store.Snapshot()
	u := a.user.Snapshot()
	return aggregator.Input{
		News:          snap.News.Items,
		Movies:        snap.Movies.Items,
		Social:        snap.Social.Items,
		SearchResults: snap.SearchResults,
		Favorites:     u.Favorites,
		ContentOrder:  u.ContentOrder,
	}
}

// reportErrors prints per-provider failures. Nothing here is fatal - the
// affected provider already degraded to synthetic content or zero results.
func (a *app) reportErrors(cmd *cobra.Command) {
	snap := a.store.Snapshot()
	for name, msg := range map[string]string{
		"news":   snap.News.Err,
		"movies": snap.Movies.Err,
		"social": snap.Social.Err,
		"search": snap.SearchErr,
	} {
		if msg != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (re-run to retry)\n", name, msg)
		}
	}
}

// newRootCmd creates the root command for the dashmix CLI.
func newRootCmd() *cobra.Command {
	info, _ := debug.ReadBuildInfo()
	rootCmd := &cobra.Command{
		Use:     "dashmix",
		Short:   "Aggregate news, movies, and social posts into one feed",
		Long:    "Dashmix aggregates content from news, movie, and social providers into a single personalized feed.",
		Version: resolveVersion(version, info),
	}

	rootCmd.SetVersionTemplate("dashmix version {{.Version}}\n")

	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newTrendingCmd())
	rootCmd.AddCommand(newFavoritesCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newReorderCmd())

	return rootCmd
}

// newFeedCmd creates the feed subcommand.
func newFeedCmd() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Display the personalized feed",
		Long:  "Display the interleaved feed of news, movies, and social posts, honoring any saved custom ordering.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			a, err := newApp()
			if err != nil {
				return err
			}

			a.loadPages(ctx, pages)

			items := aggregator.Compose(aggregator.ViewFeed, a.composeInput())
			fmt.Fprint(cmd.OutOrStdout(), a.fmtr.FormatFeed(items, a.user.IsFavorite))
			a.reportErrors(cmd)
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "Number of pages to load per provider")

	return cmd
}

// newTrendingCmd creates the trending subcommand.
func newTrendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Display trending content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			a, err := newApp()
			if err != nil {
				return err
			}

			a.loadPages(ctx, 1)

			items := aggregator.Compose(aggregator.ViewTrending, a.composeInput())
			fmt.Fprint(cmd.OutOrStdout(), a.fmtr.FormatFeed(items, a.user.IsFavorite))
			a.reportErrors(cmd)
			return nil
		},
	}
}

// newFavoritesCmd creates the favorites subcommand and its add/remove verbs.
func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Display or manage favorited items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			a, err := newApp()
			if err != nil {
				return err
			}

			a.loadPages(ctx, 1)

			items := aggregator.Compose(aggregator.ViewFavorites, a.composeInput())
			fmt.Fprint(cmd.OutOrStdout(), a.fmtr.FormatFeed(items, func(string) bool { return true }))
			a.reportErrors(cmd)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Favorite an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.user.AddFavorite(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Favorited %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Unfavorite an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.user.RemoveFavorite(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// newSearchCmd creates the search subcommand.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search across all three providers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			a, err := newApp()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			a.store.Search(ctx, query)

			items := aggregator.Compose(aggregator.ViewSearch, a.composeInput())
			fmt.Fprintf(cmd.OutOrStdout(), "Search results for %q:\n\n", query)
			fmt.Fprint(cmd.OutOrStdout(), a.fmtr.FormatFeed(items, a.user.IsFavorite))
			a.reportErrors(cmd)
			return nil
		},
	}
}

// newPrefsCmd creates the prefs subcommand.
func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show content preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			p := a.user.Preferences()
			fmt.Fprintf(cmd.OutOrStdout(), "News categories:  %s\n", strings.Join(p.Categories, ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "News countries:   %s\n", strings.Join(p.NewsCountries, ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Movie genres:     %s\n", strings.Join(p.MovieGenres, ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Social hashtags:  %s\n", strings.Join(p.SocialHashtags, ", "))
			return nil
		},
	}

	var categories, countries, genres, hashtags []string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update content preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			p := a.user.Preferences()
			if cmd.Flags().Changed("categories") {
				p.Categories = categories
			}
			if cmd.Flags().Changed("countries") {
				p.NewsCountries = countries
			}
			if cmd.Flags().Changed("genres") {
				p.MovieGenres = genres
			}
			if cmd.Flags().Changed("hashtags") {
				p.SocialHashtags = hashtags
			}
			a.user.SetPreferences(p)
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved.")
			return nil
		},
	}
	setCmd.Flags().StringSliceVar(&categories, "categories", nil, "News categories (e.g. technology,business)")
	setCmd.Flags().StringSliceVar(&countries, "countries", nil, "News countries (e.g. us,gb)")
	setCmd.Flags().StringSliceVar(&genres, "genres", nil, "Movie genres (e.g. Action,Comedy)")
	setCmd.Flags().StringSliceVar(&hashtags, "hashtags", nil, "Social hashtags (e.g. tech,design)")
	cmd.AddCommand(setCmd)

	return cmd
}

// newReorderCmd creates the reorder subcommand. Reordering only applies to
// the feed view; the resulting id sequence is persisted as the custom order.
func newReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <from> <to>",
		Short: "Move a feed item to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			a, err := newApp()
			if err != nil {
				return err
			}

			a.loadPages(ctx, 1)

			items := aggregator.Compose(aggregator.ViewFeed, a.composeInput())
			order := aggregator.Reorder(items, from, to)
			if order == nil {
				return fmt.Errorf("positions must be between 0 and %d", len(items)-1)
			}
			a.user.SetContentOrder(order)

			fmt.Fprint(cmd.OutOrStdout(), a.fmtr.FormatFeed(aggregator.Compose(aggregator.ViewFeed, a.composeInput()), a.user.IsFavorite))
			return nil
		},
	}
}
