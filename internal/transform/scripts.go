package transform

import (
	"fmt"

	"github.com/quantmind-br/bunmigrate/internal/jsondoc"
)

// Script commands installed by Scripts. build runs the bun build entry
// point; the lint/format pairs call Biome, with the :fix variants writing
// changes back.
const (
	BuildCommand     = "bun build.ts"
	LintCommand      = "bun biome lint ."
	LintFixCommand   = "bun biome lint --apply ."
	FormatCommand    = "bun biome format ."
	FormatFixCommand = "bun biome format --write ."
)

// legacyLintFormatKey is the pre-Biome alias that combined linting and
// formatting; it is superseded by the separate lint/format entries.
const legacyLintFormatKey = "lint:format"

// Scripts rewrites the manifest's scripts section for a bun + Biome
// toolchain: build, lint, lint:fix, format, and format:fix are set to
// their fixed commands (overwriting existing values in place) and the
// obsolete lint:format alias is dropped. A missing scripts section is
// created; a scripts field holding a non-object is rejected.
//
// The edit is idempotent and never touches other manifest fields.
func Scripts(doc *jsondoc.Value) ([]string, error) {
	if !doc.IsObject() {
		return nil, ErrRootNotObject
	}

	scripts := doc.Get("scripts")
	if scripts == nil {
		scripts = jsondoc.NewObject()
		doc.Set("scripts", scripts)
	} else if !scripts.IsObject() {
		return nil, fmt.Errorf("%w: scripts is %s", ErrSectionNotObject, scripts.Kind())
	}

	scripts.Set("build", jsondoc.NewString(BuildCommand))
	scripts.Delete(legacyLintFormatKey)
	scripts.Set("lint", jsondoc.NewString(LintCommand))
	scripts.Set("lint:fix", jsondoc.NewString(LintFixCommand))
	scripts.Set("format", jsondoc.NewString(FormatCommand))
	scripts.Set("format:fix", jsondoc.NewString(FormatFixCommand))

	return nil, nil
}
