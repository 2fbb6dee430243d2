// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trips

import (
	"github.com/pdiddy/tripconv/internal/platform"
	"github.com/pdiddy/tripconv/internal/tableext"
	"github.com/pdiddy/tripconv/pkg/types"
)

// ExtractTable runs the full table pipeline for one receipt: platform
// detection, region computation, engine extraction, and row repair.
func ExtractTable(e tableext.Engine, pdfPath string) (platform.Meta, types.Table, error) {
	meta, err := platform.Detect(pdfPath)
	if err != nil {
		return platform.Meta{}, types.Table{}, err
	}

	prof := platform.Lookup(meta.Platform)
	opts := tableext.Options{
		Region:        prof.CropRegion(meta.TripCount),
		Stream:        prof.Stream,
		FirstPageOnly: prof.FirstPageOnly,
	}

	table, err := tableext.First(e, pdfPath, opts)
	if err != nil {
		return meta, types.Table{}, err
	}

	return meta, Repair(meta.Platform, table), nil
}
