package transform

import (
	"fmt"

	"github.com/quantmind-br/bunmigrate/internal/jsondoc"
)

// Diagnostic notes emitted by RemovePrettier. These lines are part of the
// tool's stderr contract and must stay byte-for-byte stable.
const (
	NotePrettierRemoved = "Removed prettier from devDependencies."
	NotePrettierMissing = "prettier not found in devDependencies or devDependencies section missing."
)

// RemovePrettier drops the prettier entry from the manifest's
// devDependencies section. Biome replaces prettier, so a migrated manifest
// must not pull it in anymore. When the section or the entry is missing
// the manifest is left untouched; either way exactly one note reports
// which branch was taken. A devDependencies field holding a non-object is
// rejected.
func RemovePrettier(doc *jsondoc.Value) ([]string, error) {
	if !doc.IsObject() {
		return nil, ErrRootNotObject
	}

	deps := doc.Get("devDependencies")
	if deps != nil && !deps.IsObject() {
		return nil, fmt.Errorf("%w: devDependencies is %s", ErrSectionNotObject, deps.Kind())
	}

	if deps != nil && deps.Delete("prettier") {
		return []string{NotePrettierRemoved}, nil
	}
	return []string{NotePrettierMissing}, nil
}
