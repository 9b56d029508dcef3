// Package loader materializes user-authored snippet source as an executable
// module and returns its exported snippet value. Execution happens in a
// sandboxed yaegi interpreter: stdlib symbols only, with an import
// allow-list that keeps filesystem, network and process access out of
// snippet files.
package loader

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"path"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/logging"
)

// ExportName is the exported top-level value a snippet module must declare.
const ExportName = "Snippets"

// Loader executes snippet source text.
type Loader struct {
	logger zerolog.Logger

	// Allow-list of importable packages
	allowedPackages map[string]bool

	// Stdlib symbols restricted to the allow-list. Packages outside it are
	// never handed to the interpreter, so they cannot resolve even if an
	// import slips past validation.
	symbols interp.Exports
}

// New creates a Loader with the default sandbox allow-list.
func New() *Loader {
	allowed := map[string]bool{
		"strings": true,
		"strconv": true,
		"fmt":     true,
		"math":    true,
		"regexp":  true,
		"time":    true,
		"sort":    true,
		"unicode": true,

		// EXPLICITLY BLOCKED (unsafe packages):
		// "os" - filesystem access
		// "os/exec" - command execution
		// "net", "net/http" - network access
		// "syscall", "unsafe" - system access
	}
	return &Loader{
		logger:          logging.GetLogger("loader"),
		allowedPackages: allowed,
		symbols:         restrictSymbols(allowed),
	}
}

// restrictSymbols keeps only the allow-listed packages from the stdlib
// symbol table. Keys are "importpath/name", e.g. "strings/strings".
func restrictSymbols(allowed map[string]bool) interp.Exports {
	symbols := make(interp.Exports, len(allowed))
	for key, pkg := range stdlib.Symbols {
		if allowed[path.Dir(key)] {
			symbols[key] = pkg
		}
	}
	return symbols
}

// Load executes source as a self-contained module and returns its exported
// Snippets value. path is used only for diagnostic attribution. The two
// failure modes are distinguished by error code: ErrNoDefaultExport when
// execution succeeded but no Snippets value exists, ErrLoadFailed for
// execution or syntax errors. A fresh interpreter is created per call so
// no execution state survives the load, on any exit path.
func (l *Loader) Load(ctx context.Context, source, path string) (interface{}, error) {
	if err := l.validateImports(source); err != nil {
		return nil, errors.Wrap(err, errors.ErrLoadFailed, "forbidden imports").
			WithDetail("path", path)
	}

	symbol := ExportName
	if pkg := packageClause(source); pkg != "" && pkg != "main" {
		symbol = pkg + "." + ExportName
	}

	value, err := l.eval(ctx, source, symbol)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNoDefaultExport) {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrLoadFailed,
			"failed to load snippet module %s", displayPath(path)).
			WithDetail("path", path)
	}

	l.logger.Debug().Str("path", path).Str("symbol", symbol).Msg("snippet module loaded")
	return value, nil
}

// LoadNormalized first attempts a direct load. If that fails specifically
// because no Snippets export exists, the source is assumed to be a bare
// data literal and is retried wrapped as the value of a synthesized
// Snippets declaration; the retry's outcome is returned as-is. Any other
// failure is returned immediately.
func (l *Loader) LoadNormalized(ctx context.Context, source, path string) (interface{}, error) {
	value, err := l.Load(ctx, source, path)
	if err == nil {
		return value, nil
	}
	if !errors.IsErrorCode(err, errors.ErrNoDefaultExport) {
		return nil, err
	}

	l.logger.Debug().Str("path", path).Msg("no Snippets export, retrying as bare literal")
	wrapped := "var " + ExportName + " = " + source
	value, err = l.Load(ctx, wrapped, path)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// eval runs the source and the export lookup in a fresh interpreter. The
// module body may perform arbitrary work, so evaluation runs in its own
// goroutine and the context bounds it.
func (l *Loader) eval(ctx context.Context, source, symbol string) (interface{}, error) {
	type result struct {
		value interface{}
		err   error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: errors.Newf(errors.ErrLoadFailed,
					"snippet module panicked: %v", r)}
			}
		}()

		i := interp.New(interp.Options{})
		if err := i.Use(l.symbols); err != nil {
			done <- result{err: fmt.Errorf("failed to load stdlib: %w", err)}
			return
		}

		if _, err := i.Eval(source); err != nil {
			done <- result{err: err}
			return
		}

		exported, err := i.Eval(symbol)
		if err != nil || !exported.IsValid() {
			done <- result{err: errors.Newf(errors.ErrNoDefaultExport,
				"snippet module does not export %s", ExportName)}
			return
		}
		done <- result{value: exported.Interface()}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), errors.ErrLoadFailed,
			"snippet module evaluation cancelled")
	}
}

// validateImports checks that the source only imports allowed packages.
func (l *Loader) validateImports(source string) error {
	var forbidden []string
	for _, pkg := range parseImports(source) {
		if !l.allowedPackages[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("forbidden imports in snippet module: %v", forbidden)
	}
	return nil
}

// parseImports extracts the source's import paths with the Go parser
// rather than by scanning lines, so every legal import form is seen.
// Script-style sources have no package clause; one is synthesized before
// parsing. A source that does not parse yields no imports: the interpreter
// reports its own error, and packages outside the restricted symbol table
// do not resolve regardless.
func parseImports(source string) []string {
	src := source
	if packageClause(source) == "" {
		src = "package main\n" + source
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ImportsOnly)
	if f == nil && err != nil {
		return nil
	}

	paths := make([]string, 0, len(f.Imports))
	for _, imp := range f.Imports {
		pkg, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		paths = append(paths, pkg)
	}
	return paths
}

// packageClause returns the package name declared by the source, or "".
func packageClause(source string) string {
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if strings.HasPrefix(trimmed, "package ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "package "))
		}
		return ""
	}
	return ""
}

func displayPath(path string) string {
	if path == "" {
		return "<inline>"
	}
	return path
}
