// Package schema holds the structured-output JSON schema for each
// research tool. The schemas are embedded in the binary and compiled at
// startup, so a malformed schema fails the process instead of a request.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed defs/*.json
var defsFS embed.FS

type entry struct {
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

var entries = mustLoad()

func mustLoad() map[string]entry {
	names, err := fs.Glob(defsFS, "defs/*.json")
	if err != nil {
		panic(fmt.Sprintf("schema: glob embedded defs: %v", err))
	}
	out := make(map[string]entry, len(names))
	for _, fname := range names {
		raw, err := defsFS.ReadFile(fname)
		if err != nil {
			panic(fmt.Sprintf("schema: read %s: %v", fname, err))
		}
		tool := strings.TrimSuffix(path.Base(fname), ".json")
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(tool+".json", strings.NewReader(string(raw))); err != nil {
			panic(fmt.Sprintf("schema: add resource %s: %v", tool, err))
		}
		compiled, err := compiler.Compile(tool + ".json")
		if err != nil {
			panic(fmt.Sprintf("schema: compile %s: %v", tool, err))
		}
		out[tool] = entry{raw: json.RawMessage(raw), compiled: compiled}
	}
	return out
}

// Get returns the raw schema document for a tool. The second return is
// false when no schema is registered under that name.
func Get(tool string) (json.RawMessage, bool) {
	e, ok := entries[tool]
	if !ok {
		return nil, false
	}
	return e.raw, true
}

// Names returns the registered tool names in no particular order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for name := range entries {
		out = append(out, name)
	}
	return out
}

// Validate checks a decoded JSON document against the tool's schema.
func Validate(tool string, doc any) error {
	e, ok := entries[tool]
	if !ok {
		return fmt.Errorf("no schema registered for tool %q", tool)
	}
	if err := e.compiled.Validate(doc); err != nil {
		return fmt.Errorf("validate %s response: %w", tool, err)
	}
	return nil
}
