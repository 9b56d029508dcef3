// Package pipeline wires the loader, validator, compiler and sort stage
// into the batch snippet compilation flow.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/loader"
	"github.com/snipforge/snipforge/pkg/logging"
	"github.com/snipforge/snipforge/pkg/snippet"
)

// Pipeline compiles snippet source into an ordered list of matchable rules.
type Pipeline struct {
	loader *loader.Loader
	logger zerolog.Logger
}

// New creates a Pipeline with a sandboxed loader.
func New() *Pipeline {
	return &Pipeline{
		loader: loader.New(),
		logger: logging.GetLogger("pipeline"),
	}
}

// CompileAll loads source, validates the raw declarations, compiles each
// one and returns the list sorted by priority. The whole batch is
// fail-fast: the first load, validation or compilation failure aborts with
// a single error and no partial results. Only the load step can suspend;
// everything after it is synchronous and processed in array order.
func (p *Pipeline) CompileAll(ctx context.Context, source, path string, variables *snippet.Variables) ([]snippet.CompiledSnippet, error) {
	value, err := p.loader.LoadNormalized(ctx, source, path)
	if err != nil {
		return nil, err
	}

	raws, err := snippet.ValidateList(value)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().Int("count", len(raws)).Str("path", path).Msg("raw snippets validated")

	compiler := snippet.NewCompiler(variables)
	compiled := make([]snippet.CompiledSnippet, 0, len(raws))
	for i, raw := range raws {
		cs, err := compiler.Compile(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrCompileFailed,
				"failed to compile snippet %d: %s", i, describeRaw(raw)).
				WithDetail("index", i).
				WithDetail("snippet", describeRaw(raw))
		}
		compiled = append(compiled, cs)
	}

	snippet.SortByPriority(compiled)

	p.logger.Info().
		Int("count", len(compiled)).
		Str("path", path).
		Msg("snippet compilation completed")
	return compiled, nil
}

// CompileVariables normalizes a raw variable mapping and compiles source
// against it in one call, the shape most callers want.
func (p *Pipeline) CompileVariables(ctx context.Context, source, path string, rawVariables map[string]string) ([]snippet.CompiledSnippet, error) {
	variables, err := snippet.NormalizeVariables(rawVariables)
	if err != nil {
		return nil, err
	}
	return p.CompileAll(ctx, source, path, variables)
}

// describeRaw renders a raw snippet for error context.
func describeRaw(raw snippet.RawSnippet) string {
	trigger := raw.Trigger
	if raw.TriggerRegex != nil {
		trigger = raw.TriggerRegex.Source
	}
	replacement := raw.Replacement.Text
	if raw.Replacement.IsFunc() {
		replacement = "<function>"
	}
	return "{trigger: " + trigger + ", replacement: " + replacement + ", options: " + raw.Options + "}"
}
