package providers

import (
	"vcheck/internal/structures"

	"github.com/spf13/afero"
)

// NewStaticFsProvider exposes the landing page directory read-only.
func NewStaticFsProvider(conf *structures.Config) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), conf.Static.Dir))
}
