package cli

import (
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/mapfile"
)

// LoadDataset loads the HCL map at path, or the built-in Romania map when
// path is empty.
func LoadDataset(path string) (builder.Dataset, error) {
	if path == "" {
		return builder.Romania(), nil
	}

	return mapfile.Load(path)
}
