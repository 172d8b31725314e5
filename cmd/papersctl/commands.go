package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bull/research-mcp/internal/markdown"
	"github.com/bull/research-mcp/internal/papers"
	"github.com/bull/research-mcp/internal/pharma"
)

var searchCmd = &cobra.Command{
	Use:   "search <topic>",
	Short: "Search arXiv for papers on a topic and cache the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max")
		svc := newService()
		ids, err := svc.SearchPapers(cmd.Context(), args[0], maxResults)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No papers found.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <paper-id>",
	Short: "Print cached information for a paper as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		fmt.Println(svc.ExtractInfo(args[0]))
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics that have cached papers",
	Run: func(cmd *cobra.Command, args []string) {
		store := papers.NewStore(viper.GetString("papers_dir"))
		topics := store.Topics()
		if len(topics) == 0 {
			fmt.Println("No topics found.")
			return
		}
		for _, topic := range topics {
			fmt.Println(topic)
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <topic>",
	Short: "Render the cached papers for a topic as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := papers.NewStore(viper.GetString("papers_dir"))
		doc := store.RenderTopic(args[0])

		asHTML, _ := cmd.Flags().GetBool("html")
		asOutline, _ := cmd.Flags().GetBool("outline")

		switch {
		case asHTML:
			html, err := markdown.NewRenderer().ToHTML([]byte(doc))
			if err != nil {
				return fmt.Errorf("rendering HTML: %w", err)
			}
			fmt.Print(html)
		case asOutline:
			items, err := markdown.NewRenderer().Outline([]byte(doc))
			if err != nil {
				return fmt.Errorf("building outline: %w", err)
			}
			for _, item := range items {
				fmt.Printf("%s%s\n", strings.Repeat("  ", item.Depth-1), item.Title)
			}
		default:
			fmt.Print(doc)
		}
		return nil
	},
}

var researchCmd = &cobra.Command{
	Use:   "research <ingredient>",
	Short: "Research a pharmaceutical ingredient and print the report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		focus, _ := cmd.Flags().GetString("focus")
		svc := newService()
		report, err := svc.ResearchIngredient(cmd.Context(), args[0], focus)
		if err != nil {
			return fmt.Errorf("research failed: %w", err)
		}
		return printJSON(report)
	},
}

var interactionsCmd = &cobra.Command{
	Use:   "interactions <ingredient>...",
	Short: "Analyze potential interactions between active ingredients",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(pharma.DefaultRules().Evaluate(args))
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	searchCmd.Flags().Int("max", 5, "maximum number of results")
	renderCmd.Flags().Bool("html", false, "render as HTML")
	renderCmd.Flags().Bool("outline", false, "print the heading outline")
	researchCmd.Flags().String("focus", "", "research focus (default: safety and efficacy)")
}
