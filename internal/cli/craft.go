package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/bootstrap"
	"github.com/osse101/craftlab/internal/crafting"
	"github.com/osse101/craftlab/internal/domain"
)

// CraftResult is the craft command's JSON payload
type CraftResult struct {
	Tokens         []string           `json:"tokens"`
	Recipe         domain.Recipe      `json:"recipe"`
	Crafts         int                `json:"crafts"`
	FirstDiscovery bool               `json:"first_discovery"`
	Stats          domain.RecipeStats `json:"stats"`
}

// NewCraftCommand creates the craft command.
func NewCraftCommand(rootOpts *RootOptions) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "craft <ingredient>...",
		Short: "Stage ingredients and craft the matching recipe",
		Long: `Stage each ingredient in order, then craft if the staged set matches a recipe.

Ingredients may be written as ids (water_drop) or names ("Water Drop").
Order does not matter; quantities do. The command waits out the crafting
delay and can be interrupted, in which case nothing is recorded.`,
		Example: `  craftlab craft spark spark
  craftlab craft lightning lightning lightning --times 3 --delay 0s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return NewExitError(ExitCommandError, "--times must be at least 1")
			}
			return runCraft(rootOpts, cmd, args, times)
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "craft the same ingredients this many times")
	return cmd
}

func runCraft(opts *RootOptions, cmd *cobra.Command, args []string, times int) error {
	ctx := cmd.Context()
	formatter := opts.formatter(cmd)

	app, err := opts.App(cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return err
	}

	tokens := resolveTokens(app, formatter, args)
	if limit := app.Config.SlotLimit; len(tokens) > limit {
		formatter.Warn("%d ingredients staged; the crafting table shows %d slots", len(tokens), limit)
	}

	session := app.Engine.NewSession(ctx)
	defer session.Close()

	result := CraftResult{Tokens: tokens}
	for i := 0; i < times; i++ {
		recipe, first, err := craftOnce(ctx, session, formatter, tokens, app.Config.SlotLimit)
		if err != nil {
			return err
		}
		result.Recipe = recipe
		result.Crafts++
		result.FirstDiscovery = result.FirstDiscovery || first
	}

	stats, err := app.Stats.GetRecipeStats(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compute stats", err)
	}
	result.Stats = *stats

	if opts.Verbose {
		writeMetrics(formatter, app)
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "Crafted %s x%d -> %s\n", result.Recipe.Name, result.Crafts, resultLabel(result.Recipe.Result))
		if result.FirstDiscovery {
			fmt.Fprintln(w, discoveredStyle.Render("New recipe discovered!"))
		}
		fmt.Fprintf(w, "Times completed: %d\n", result.Recipe.TimesCompleted)
		writeStatsLine(w, result.Stats)
	})
}

// resolveTokens maps typed names to ingredient ids. Unknown names are kept
// as typed; they can never match, so the user gets suggestions.
func resolveTokens(app *bootstrap.App, formatter *OutputFormatter, args []string) []string {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		if id, ok := app.Resolver.Resolve(arg); ok {
			tokens = append(tokens, id)
			continue
		}
		if suggestions := app.Resolver.Suggest(arg); len(suggestions) > 0 {
			formatter.Warn("unknown ingredient %q; did you mean %s?", arg, strings.Join(suggestions, ", "))
		} else {
			formatter.Warn("unknown ingredient %q", arg)
		}
		tokens = append(tokens, arg)
	}
	return tokens
}

func craftOnce(ctx context.Context, s *crafting.Session, formatter *OutputFormatter, tokens []string, slots int) (domain.Recipe, bool, error) {
	for _, t := range tokens {
		s.AddToken(ctx, t)
	}
	formatter.VerboseLog("slots: %s", slotView(s.Tokens(), slots))

	match, ok := s.Match()
	if !ok || !s.Craft(ctx) {
		_ = formatter.Error(ErrCodeNoMatch, "no recipe matches these ingredients", tokens)
		return domain.Recipe{}, false, NewExitError(ExitFailure, "no recipe matches these ingredients")
	}
	formatter.VerboseLog("crafting %s...", match.Name)

	<-s.Done()

	result, ok := s.Result()
	if !ok {
		_ = formatter.Error(ErrCodeCraftCancelled, "craft cancelled before it completed", match.ID)
		return domain.Recipe{}, false, NewExitError(ExitFailure, "craft cancelled")
	}
	first := s.FirstDiscovery()
	s.DismissResult(ctx)
	return result, first, nil
}
