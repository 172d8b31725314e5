// Package main provides the papersctl CLI for working with the paper
// cache and knowledge tables outside an MCP host.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bull/research-mcp/internal/arxiv"
	"github.com/bull/research-mcp/internal/findings"
	"github.com/bull/research-mcp/internal/papers"
	"github.com/bull/research-mcp/internal/pharma"
	"github.com/bull/research-mcp/internal/research"
)

var rootCmd = &cobra.Command{
	Use:   "papersctl",
	Short: "Pharmaceutical paper cache tool",
	Long: `CLI for the research papers cache: search arXiv into per-topic JSON
caches, inspect cached papers, and run the static pharmacological
knowledge and interaction checks.

Environment variables:
  PAPERS_DIR     Cache root directory (default: papers)
  OPENAI_API_KEY Enables key findings generation in 'research' (optional)`,
}

func init() {
	viper.SetDefault("papers_dir", "papers")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("papers-dir", "", "cache root directory (overrides PAPERS_DIR)")
	_ = viper.BindPFlag("papers_dir", rootCmd.PersistentFlags().Lookup("papers-dir"))

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(interactionsCmd)
}

// newService builds the research service from the effective configuration.
// Key findings generation is enabled only when OPENAI_API_KEY is set.
func newService() *research.Service {
	cfg := &research.Config{
		Store:     papers.NewStore(viper.GetString("papers_dir")),
		Searcher:  arxiv.NewClient(nil),
		Knowledge: pharma.DefaultKnowledge(),
		Rules:     pharma.DefaultRules(),
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	if gen, err := findings.NewGenerator(); err == nil {
		cfg.Findings = gen
	}
	return research.NewService(cfg)
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
