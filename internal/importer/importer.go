// Package importer loads DXF drawings through the yofu/dxf parser and maps
// the parsed entities onto the internal geometric model. Parsing and
// attribute validation happen here; the measurement engine only ever sees
// well-formed model entities.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// Result holds the entities of a loaded drawing plus any non-fatal
// warnings collected along the way.
type Result struct {
	Entities []model.Entity
	Warnings []string
}

// ValidatePath checks that the given path names a DXF file. Only the
// extension is inspected; the file is not opened.
func ValidatePath(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".dxf") {
		return fmt.Errorf("%s: the file must be in .dxf format", path)
	}
	return nil
}
