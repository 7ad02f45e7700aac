package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbouillon/frrerank/api"
	"github.com/cbouillon/frrerank/config"
	"github.com/cbouillon/frrerank/internal/metrics"
	"github.com/cbouillon/frrerank/internal/normalize"
	"github.com/cbouillon/frrerank/internal/oracle"
	"github.com/cbouillon/frrerank/internal/rerank"
	"github.com/cbouillon/frrerank/internal/typoutil"
	"github.com/cbouillon/frrerank/model"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "frrerank",
	Short: "Hybrid fuzzy re-ranking engine for an opaque full-text index",
	Long: `frrerank re-ranks the hits a full-text index oracle returns by
combining edit-distance word alignment with French-phonetic scoring,
producing a deterministic, capped relevance score per hit.`,
}

// serveCmd starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		eng, reg, err := buildEngine(settings)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		router := gin.Default()
		api.SetupRoutes(router, eng)
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}

		fmt.Printf("Starting frrerank on port %s...\n", port)
		return router.Run(":" + port)
	},
}

// searchCmd runs a single query against an index and prints the reply, for
// local debugging without standing up the HTTP server.
var searchCmd = &cobra.Command{
	Use:   "search [index] [query]",
	Short: "Run a single search against an index and print the reply",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		eng, _, err := buildEngine(settings)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		reply, err := eng.Search(ctx, args[0], args[1], model.Options{})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		for _, hit := range reply.Hits {
			fmt.Printf("%.2f  %-10s  %s\n", hit.Score, hit.MatchType, hit.Candidate.Name())
		}
		return nil
	},
}

// buildEngine wires the production Oracle, Normalizer, EditDistance, and
// Prometheus registry behind an Engine, per settings.
func buildEngine(settings config.Settings) (*rerank.Engine, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	m := metrics.New()
	m.MustRegister(reg)

	idxOracle := oracle.NewMeilisearchOracle(settings.MeilisearchHost, settings.MeilisearchAPIKey)

	eng := rerank.New(rerank.Deps{
		Oracle:             idxOracle,
		Normalizer:         normalize.New(),
		EditDistance:       typoutil.NewDamerauLevenshtein(),
		DefaultLimit:       settings.DefaultLimit,
		DefaultMaxDistance: settings.DefaultMaxDistance,
		CacheCapacity:      settings.CacheCapacity,
		CacheTTL:           time.Duration(settings.CacheTTLSeconds) * time.Second,
		SynonymsPath:       settings.SynonymsPath,
		Metrics:            m,
	})

	return eng, reg, nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/JSON/TOML, read via viper)")
	rootCmd.PersistentFlags().String("port", "8080", "port the HTTP server listens on")

	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
}
