package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amitkr54/svgtemplate/internal/canvas"
	"github.com/amitkr54/svgtemplate/internal/pipeline"
	"github.com/amitkr54/svgtemplate/internal/svg"
)

const (
	defaultStorePath = "./data/templates.json"
	defaultAssetDir  = "./public"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "svgtemplate",
		Short: "Maintain signage template components and canvas snapshots",
		Long: `svgtemplate is the offline tooling for the signage storefront's
template catalog. It extracts editable components from raw SVG artwork,
resyncs the JSON template store, normalizes editor snapshots onto the
canonical pixel resolutions, and regenerates preview thumbnails.`,
		SilenceUsage: true,
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newResyncCmd())
	root.AddCommand(newNormalizeCmd())
	root.AddCommand(newThumbnailsCmd())
	return root
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file.svg>",
		Short: "Extract the component description from one SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read SVG: %w", err)
			}

			opts := svg.MigrateOptions()
			if singleLine, _ := cmd.Flags().GetBool("single-line"); singleLine {
				opts.MergeTspans = false
			}
			if rawAttrs, _ := cmd.Flags().GetBool("raw-attrs"); rawAttrs {
				opts.RetainAttributes = true
			}

			components := svg.Extract(string(markup), opts)
			data, err := json.MarshalIndent(components, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode components: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			log.Printf("Done: %s", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().Bool("single-line", false, "Keep only the first tspan line of each text element")
	cmd.Flags().Bool("raw-attrs", false, "Record raw shape attributes alongside resolved styles")
	return cmd
}

func newResyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resync",
		Short: "Re-extract components for every template in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			assetDir, _ := cmd.Flags().GetString("assets")

			opts := svg.ResyncOptions()
			if merge, _ := cmd.Flags().GetBool("merge-tspans"); merge {
				opts = svg.MigrateOptions()
			}

			log.Printf("Resyncing: %s (assets: %s)", storePath, assetDir)
			updated, err := pipeline.NewResync(pipeline.ResyncOptions{
				StorePath: storePath,
				AssetDir:  assetDir,
				Extract:   opts,
			}).Run()
			if err != nil {
				return fmt.Errorf("resync failed: %w", err)
			}
			log.Printf("Done: %d templates resynced", updated)
			return nil
		},
	}
	cmd.Flags().String("store", defaultStorePath, "Template store JSON file")
	cmd.Flags().String("assets", defaultAssetDir, "Directory containing template SVG assets")
	cmd.Flags().Bool("merge-tspans", false, "Merge tspans into multi-line text (migration behavior)")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <snapshot.json>",
		Short: "Snap a canvas snapshot onto its canonical pixel resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetFloat64("width")
			height, _ := cmd.Flags().GetFloat64("height")
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}
			var snapshot canvas.Snapshot
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("failed to parse snapshot: %w", err)
			}

			normalized, err := canvas.Normalize(snapshot, width, height)
			if err != nil {
				return fmt.Errorf("normalization failed: %w", err)
			}

			out, err := json.MarshalIndent(normalized, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = args[0]
			}
			if err := os.WriteFile(output, append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			log.Printf("Done: %s", output)
			return nil
		},
	}
	cmd.Flags().Float64("width", 0, "Physical template width")
	cmd.Flags().Float64("height", 0, "Physical template height")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: overwrite input)")
	return cmd
}

func newThumbnailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbnails",
		Short: "Regenerate preview thumbnails at canonical resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			assetDir, _ := cmd.Flags().GetString("assets")

			written, err := pipeline.Thumbnails(pipeline.ThumbnailOptions{
				StorePath: storePath,
				AssetDir:  assetDir,
			})
			if err != nil {
				return fmt.Errorf("thumbnail pass failed: %w", err)
			}
			log.Printf("Done: %d thumbnails written", written)
			return nil
		},
	}
	cmd.Flags().String("store", defaultStorePath, "Template store JSON file")
	cmd.Flags().String("assets", defaultAssetDir, "Directory containing preview images")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
