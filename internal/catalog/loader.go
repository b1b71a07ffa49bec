package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/logger"
)

//go:embed schemas/recipes.schema.json
var schemaJSON []byte

// File is the on-disk catalog document
type File struct {
	Version     string          `json:"version" yaml:"version"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Recipes     []domain.Recipe `json:"recipes" yaml:"recipes"`
}

// Loader reads catalog files, validates them against the embedded schema and
// builds a Catalog
type Loader struct {
	opts Options

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
}

// NewLoader creates a loader that builds catalogs with opts
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Load reads a .json, .yaml or .yml catalog file
func (l *Loader) Load(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	c, err := l.LoadBytes(ctx, data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadBytes parses data in the format named by ext (".json", ".yaml", ".yml")
func (l *Loader) LoadBytes(ctx context.Context, data []byte, ext string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	doc, file, err := decode(data, strings.ToLower(ext))
	if err != nil {
		return nil, err
	}

	if err := l.validateSchema(doc); err != nil {
		return nil, err
	}

	c, issues, err := New(file.Recipes, l.opts)
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		if issue.Other != "" {
			log.Warn(LogMsgAmbiguousRecipe, "recipe", issue.RecipeID, "shadowed_by", issue.Other)
			continue
		}
		log.Warn(LogMsgDuplicateIngredient, "recipe", issue.RecipeID, "error", issue.Err)
	}

	log.Info(LogMsgCatalogLoaded, "version", file.Version, "recipes", c.Len(), "issues", len(issues))
	return c, nil
}

// decode returns the raw JSON document (for schema validation) and the typed file
func decode(data []byte, ext string) ([]byte, *File, error) {
	var file File

	switch ext {
	case ExtJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseCatalogFailed, domain.ErrInvalidCatalog, err)
		}
		return data, &file, nil

	case ExtYAML, ExtYML:
		var generic interface{}
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseCatalogFailed, domain.ErrInvalidCatalog, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseCatalogFailed, domain.ErrInvalidCatalog, err)
		}
		doc, err := json.Marshal(generic)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseCatalogFailed, domain.ErrInvalidCatalog, err)
		}
		return doc, &file, nil

	default:
		return nil, nil, fmt.Errorf("%w: "+ErrMsgUnsupportedFormatFmt, domain.ErrInvalidCatalog, ext)
	}
}

func (l *Loader) validateSchema(doc []byte) error {
	l.schemaOnce.Do(func() {
		l.schema, l.schemaErr = compileSchema()
	})
	if l.schemaErr != nil {
		return fmt.Errorf(ErrMsgSchemaLoadFailed, l.schemaErr)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf(ErrMsgParseCatalogFailed, domain.ErrInvalidCatalog, err)
	}

	if err := l.schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(SchemaURL, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(SchemaURL)
}

// formatValidationError flattens a schema error tree into one line per failure
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%w: "+ErrMsgSchemaFailed, domain.ErrInvalidCatalog, strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		keywords := ""
		if err.ErrorKind != nil {
			keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
		}
		if keywords != "" {
			*lines = append(*lines, fmt.Sprintf("  - at %s: %s validation failed", location, keywords))
		} else {
			*lines = append(*lines, fmt.Sprintf("  - at %s: validation failed", location))
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// definition is a recipe without its progress fields, as written to catalog files
type definition struct {
	ID          string                         `json:"id" yaml:"id"`
	Name        string                         `json:"name" yaml:"name"`
	Description string                         `json:"description,omitempty" yaml:"description,omitempty"`
	Ingredients []domain.IngredientRequirement `json:"ingredients" yaml:"ingredients"`
	Result      domain.RecipeResult            `json:"result" yaml:"result"`
	Category    domain.Category                `json:"category" yaml:"category"`
}

type definitionFile struct {
	Version     string       `json:"version" yaml:"version"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Recipes     []definition `json:"recipes" yaml:"recipes"`
}

// Marshal writes a catalog in the given format, recipes in catalog order.
// The output loads back through Loader unchanged.
func Marshal(c *Catalog, ext string, description string) ([]byte, error) {
	file := definitionFile{Version: CatalogVersion, Description: description}
	for _, r := range c.recipes {
		file.Recipes = append(file.Recipes, definition{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Ingredients: r.Ingredients,
			Result:      r.Result,
			Category:    r.Category,
		})
	}

	switch strings.ToLower(ext) {
	case ExtJSON:
		return json.MarshalIndent(file, "", "  ")
	case ExtYAML, ExtYML:
		return yaml.Marshal(file)
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedFormatFmt, domain.ErrInvalidCatalog, ext)
	}
}
