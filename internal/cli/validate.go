package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/domain"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Path    string   `json:"path"`
	Recipes int      `json:"recipes,omitempty"`
	Issues  []string `json:"issues,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog-file>",
		Short: "Validate a recipe catalog without crafting",
		Long: `Validate a JSON or YAML recipe catalog against the catalog schema and the
authoring rules: unique recipe ids, one line per ingredient, and no two recipes
requiring the same ingredients. With --strict any issue fails validation;
otherwise issues are reported and the earlier recipe wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args[0])
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := opts.formatter(cmd)

	cfg, err := opts.Config(cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return err
	}

	result := ValidationResult{Path: path}
	c, err := catalog.NewLoader(catalog.Options{Strict: cfg.CatalogStrict}).Load(cmd.Context(), path)
	if err != nil {
		result.Errors = []string{err.Error()}
		if outErr := formatter.Success(result, func(w io.Writer) {
			fmt.Fprintf(w, "%s: invalid\n  %s\n", path, err)
		}); outErr != nil {
			return outErr
		}

		code := ExitFailure
		if !errors.Is(err, domain.ErrInvalidCatalog) &&
			!errors.Is(err, domain.ErrInvalidRecipe) &&
			!errors.Is(err, domain.ErrDuplicateRecipeKey) {
			code = ExitCommandError
		}
		return WrapExitError(code, "catalog is invalid", err)
	}

	result.Valid = true
	result.Recipes = c.Len()
	for _, issue := range c.Issues() {
		result.Issues = append(result.Issues, issue.Err.Error())
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "%s: valid, %d recipes\n", path, result.Recipes)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  warning: %s\n", issue)
		}
	})
}
