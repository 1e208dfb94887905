package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"repointel/internal/config"
	"repointel/internal/graph"
	"repointel/internal/index"
	"repointel/internal/semantic"
	"repointel/internal/source"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "repointel",
		Short: "Static repository intelligence: extraction, annotation, and dependency graphs",
	}
	configPath   string
	manifestPath string
	outputPath   string
	markdownPath string
	renderGraphs bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	analyzeCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Analyze files listed in a JSON manifest instead of a directory")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the JSON report to this path")
	analyzeCmd.Flags().StringVar(&markdownPath, "markdown", "", "Also write a Markdown summary to this path")
	analyzeCmd.Flags().BoolVar(&renderGraphs, "render", false, "Render graph images with graphviz")
	routesCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Analyze files listed in a JSON manifest instead of a directory")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(routesCmd)
}

// loadFiles resolves the analysis input: a manifest when given, otherwise
// a directory walk rooted at the positional argument or the config root.
func loadFiles(cfg *config.Config, args []string) ([]source.File, error) {
	if manifestPath != "" {
		return source.LoadManifest(manifestPath)
	}
	root := cfg.Project.Root
	if len(args) > 0 {
		root = args[0]
	}
	return source.NewLoader().LoadDir(root)
}

func buildAnalyzer(ctx context.Context, cfg *config.Config, render bool) (*index.Analyzer, error) {
	gen, err := semantic.NewGenerator(ctx, semantic.GeneratorOptions{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	var renderer graph.Renderer = graph.NoopRenderer{}
	if render {
		renderer = graph.NewGraphvizRenderer()
	}
	return index.NewAnalyzer(gen, renderer), nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a repository and produce the intelligence report",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if renderGraphs {
			cfg.Output.Render = true
		}

		files, err := loadFiles(cfg, args)
		if err != nil {
			log.Fatalf("Failed to load source files: %v", err)
		}
		fmt.Printf("📂 Loaded %d source files.\n", len(files))

		analyzer, err := buildAnalyzer(ctx, cfg, cfg.Output.Render)
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		fmt.Println("🚀 Analyzing...")
		start := time.Now()
		rep, err := analyzer.Run(ctx, files)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		fmt.Printf("✅ Analyzed %d files in %v.\n", rep.Metadata.TotalFiles, time.Since(start))

		out := outputPath
		if out == "" {
			out = cfg.Output.JSONPath
		}
		if err := rep.WriteJSON(out); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("💾 Report written to %s\n", out)

		md := markdownPath
		if md == "" {
			md = cfg.Output.Markdown
		}
		if md != "" {
			if err := rep.WriteMarkdown(md); err != nil {
				log.Fatalf("Failed to write markdown summary: %v", err)
			}
			fmt.Printf("📝 Summary written to %s\n", md)
		}
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes [path]",
	Short: "List the API routes discovered in a repository",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		files, err := loadFiles(cfg, args)
		if err != nil {
			log.Fatalf("Failed to load source files: %v", err)
		}

		analyzer := index.NewAnalyzer(semantic.NoopGenerator{}, graph.NoopRenderer{})
		rep, err := analyzer.Run(ctx, files)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}

		total := 0
		for _, f := range rep.Files {
			for _, rt := range f.Routes {
				method := rt.Method
				if method == "" {
					method = "*"
				}
				fmt.Printf("%-7s %-40s %s\n", method, rt.Path, f.FilePath)
				total++
			}
		}
		if total == 0 {
			fmt.Println("No routes detected.")
			return
		}
		fmt.Printf("\n%d route(s) across %d files.\n", total, rep.Metadata.TotalFiles)
	},
}
