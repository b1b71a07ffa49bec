package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/naming"
)

// NewRecipesCommand creates the recipes command.
func NewRecipesCommand(rootOpts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List the recipe catalog",
		Long: `List every recipe in catalog order with its ingredients and result.

Catalog order matters: when two recipes need the same ingredients the earlier one is crafted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipes(rootOpts, cmd, domain.Category(category))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category (evolution|fusion|craft|special)")
	return cmd
}

func runRecipes(opts *RootOptions, cmd *cobra.Command, category domain.Category) error {
	formatter := opts.formatter(cmd)

	if category != "" && !category.Valid() {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("unknown category %q", category), domain.Categories)
		return NewExitError(ExitCommandError, "unknown category")
	}

	app, err := opts.App(cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return err
	}

	recipes, err := app.Store.ListRecipes(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list recipes", err)
	}
	if category != "" {
		filtered := recipes[:0]
		for _, r := range recipes {
			if r.Category == category {
				filtered = append(filtered, r)
			}
		}
		recipes = filtered
	}

	return formatter.Success(recipes, func(w io.Writer) {
		writeRecipeTable(w, recipes)
	})
}

func writeRecipeTable(w io.Writer, recipes []domain.Recipe) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("RECIPE")+"\t"+headerStyle.Render("CATEGORY")+"\t"+
		headerStyle.Render("INGREDIENTS")+"\t"+headerStyle.Render("RESULT"))
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Name,
			naming.Title(string(r.Category)),
			ingredientList(r.Ingredients),
			resultLabel(r.Result))
	}
	_ = tw.Flush()
}
