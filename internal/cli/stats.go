package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/bootstrap"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/naming"
)

// StatsResult is the stats command's JSON payload
type StatsResult struct {
	Overall    domain.RecipeStats     `json:"overall"`
	Categories []domain.CategoryStats `json:"categories"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show discovery progress for the catalog",
		Long: `Show discovered and total recipe counts, completion percentage and total crafts,
overall and per category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := opts.formatter(cmd)

	app, err := opts.App(cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return err
	}

	overall, err := app.Stats.GetRecipeStats(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compute stats", err)
	}
	categories, err := app.Stats.GetCategoryStats(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compute stats", err)
	}

	result := StatsResult{Overall: *overall, Categories: categories}
	return formatter.Success(result, func(w io.Writer) {
		writeStatsLine(w, result.Overall)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, headerStyle.Render("CATEGORY")+"\t"+headerStyle.Render("DISCOVERED")+"\t"+headerStyle.Render("CRAFTS"))
		for _, c := range result.Categories {
			fmt.Fprintf(tw, "%s\t%d/%d (%d%%)\t%d\n",
				naming.Title(string(c.Category)), c.DiscoveredCount, c.TotalCount, c.CompletionPercentage, c.TotalCrafts)
		}
		_ = tw.Flush()
	})
}

func writeStatsLine(w io.Writer, s domain.RecipeStats) {
	fmt.Fprintf(w, "Discovered %d/%d recipes (%d%%), %d crafts total\n",
		s.DiscoveredCount, s.TotalCount, s.CompletionPercentage, s.TotalCrafts)
}

// writeMetrics dumps the engine's metric samples as diagnostics
func writeMetrics(formatter *OutputFormatter, app *bootstrap.App) {
	samples, err := app.Metrics.Snapshot()
	if err != nil {
		formatter.Warn("metrics unavailable: %v", err)
		return
	}
	for _, s := range samples {
		formatter.VerboseLog("%s %g", s.Name, s.Value)
	}
}
