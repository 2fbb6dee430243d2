// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableext

import (
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/tripconv/pkg/types"
)

// letterHeight is the fallback page height when no MediaBox is present.
const letterHeight = 792.0

// GeometryEngine reconstructs tables in-process from the positioned text
// fragments a PDF page carries. Fragments are cropped to the platform
// region, clustered into rows by baseline, and split into columns either
// by drawn grid lines (lattice) or by whitespace gaps (stream).
type GeometryEngine struct {
	layout layoutConfig
}

// NewGeometryEngine returns a geometry engine with default tolerances.
func NewGeometryEngine() *GeometryEngine {
	return &GeometryEngine{layout: defaultLayout()}
}

// ExtractTables extracts one table per page that has text inside the crop
// region. Pages without qualifying text produce no table.
func (g *GeometryEngine) ExtractTables(pdfPath string, opts Options) ([]types.Table, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer f.Close()

	lastPage := lastPageIndex(r.NumPage(), opts.FirstPageOnly)

	var tables []types.Table
	for n := 1; n <= lastPage; n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}

		t := g.extractPage(p, pdfPath, opts)
		if !t.Empty() {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

// lastPageIndex caps the page scan at page 1 for receipts whose table
// lives only on the first page.
func lastPageIndex(numPages int, firstPageOnly bool) int {
	if firstPageOnly && numPages > 1 {
		return 1
	}
	return numPages
}

func (g *GeometryEngine) extractPage(p pdf.Page, pdfPath string, opts Options) types.Table {
	height := pageHeight(p)
	region := clampRegion(opts.Region, height, pdfPath)
	content := p.Content()

	var frags []fragment
	for _, t := range content.Text {
		topY := height - t.Y
		if region != nil && !region.Contains(t.X+t.W/2, topY) {
			continue
		}
		frags = append(frags, fragment{
			x:    t.X,
			w:    t.W,
			y:    topY,
			size: t.FontSize,
			text: t.S,
		})
	}

	rows := groupRows(frags, g.layout.rowTolerance)
	if len(rows) == 0 {
		return types.Table{}
	}

	spans := g.spans(rows, content, height, region, opts.Stream)
	return assemble(rows, spans)
}

// spans picks column boundaries. Lattice mode trusts the drawn grid when
// one exists; stream mode, and lattice pages without enough ruled edges,
// use whitespace gaps.
func (g *GeometryEngine) spans(rows []row, content pdf.Content, height float64, region *types.Region, stream bool) []span {
	if !stream {
		if s := spansFromEdges(verticalEdges(content, height, region)); s != nil {
			return s
		}
	}
	return columnSpans(rows, g.layout.columnGap)
}

// verticalEdges collects the X positions of vertical strokes inside the
// region. Table grids are drawn as thin filled rectangles, so a rectangle
// narrower than it is tall counts as a vertical edge.
func verticalEdges(content pdf.Content, height float64, region *types.Region) []float64 {
	var edges []float64
	for _, rect := range content.Rect {
		w := math.Abs(rect.Max.X - rect.Min.X)
		h := math.Abs(rect.Max.Y - rect.Min.Y)
		if w >= 2 || h < w {
			continue
		}
		x := (rect.Min.X + rect.Max.X) / 2
		topY := height - math.Max(rect.Min.Y, rect.Max.Y)
		if region != nil && !region.Contains(x, topY) {
			continue
		}
		edges = append(edges, x)
	}
	return edges
}

// clampRegion bounds the crop region to the page. Platform growth formulas
// can push the bottom edge past the physical page; tabula clamps silently,
// the geometry engine logs it at debug level.
func clampRegion(region *types.Region, height float64, pdfPath string) *types.Region {
	if region == nil {
		return nil
	}
	r := *region
	if r.Bottom > height {
		log.Debug().Str("pdf", pdfPath).
			Float64("bottom", r.Bottom).Float64("page_height", height).
			Msg("crop region clamped to page height")
		r.Bottom = height
	}
	return &r
}

// pageHeight reads the MediaBox height, walking up the page tree since the
// box may be inherited from a parent Pages node.
func pageHeight(p pdf.Page) float64 {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
	}
	return letterHeight
}
