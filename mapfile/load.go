package mapfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
)

// Load reads and parses the map file at path.
func Load(path string) (builder.Dataset, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return builder.Dataset{}, fmt.Errorf("mapfile: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes an HCL map. filename is used in diagnostics and, when the
// file has no name attribute, as the dataset name.
func Parse(src []byte, filename string) (builder.Dataset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return builder.Dataset{}, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	var mf hclMapFile
	if diags = gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return builder.Dataset{}, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	ds, err := mf.dataset()
	if err != nil {
		return builder.Dataset{}, fmt.Errorf("%s: %w", filename, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	return ds, nil
}

// dataset builds and validates the graph, heuristic and layout.
func (mf *hclMapFile) dataset() (builder.Dataset, error) {
	g := core.NewGraph(core.WithCapacity(len(mf.Cities)))
	for _, c := range mf.Cities {
		if err := g.AddVertex(c.ID); err != nil {
			return builder.Dataset{}, fmt.Errorf("%w: city %q: %w", ErrInvalidMap, c.ID, err)
		}
	}
	for _, r := range mf.Roads {
		for _, id := range []string{r.From, r.To} {
			if !g.HasVertex(id) {
				return builder.Dataset{}, fmt.Errorf("%w: road %s-%s: city %q: %w", ErrInvalidMap, r.From, r.To, id, core.ErrVertexNotFound)
			}
		}
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return builder.Dataset{}, fmt.Errorf("%w: road %s-%s: %w", ErrInvalidMap, r.From, r.To, err)
		}
	}

	estimates := make(map[string]int64)
	pos := make(core.Positions)
	for _, c := range mf.Cities {
		if c.Neighbors != nil {
			if err := g.SetNeighbors(c.ID, c.Neighbors...); err != nil {
				return builder.Dataset{}, fmt.Errorf("%w: city %q: %w", ErrInvalidMap, c.ID, err)
			}
		}
		if c.Heuristic != nil {
			estimates[c.ID] = *c.Heuristic
		}
		p, ok, err := decodePosition(c.Position)
		if err != nil {
			return builder.Dataset{}, fmt.Errorf("%w: city %q position: %w", ErrInvalidMap, c.ID, err)
		}
		if ok {
			pos[c.ID] = p
		}
	}
	if len(estimates) > 0 && mf.Goal == "" {
		return builder.Dataset{}, fmt.Errorf("%w: heuristic values need a goal", ErrInvalidMap)
	}

	ds := builder.Dataset{Name: mf.Name, Graph: g, Positions: pos}
	if mf.Goal != "" {
		ds.Heuristic = core.NewHeuristic(mf.Goal, estimates)
	}
	if err := ds.Validate(); err != nil {
		return builder.Dataset{}, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}

	return ds, nil
}

// decodePosition evaluates a position attribute. A missing attribute yields
// ok == false.
func decodePosition(expr hcl.Expression) (p core.Point, ok bool, err error) {
	if expr == nil {
		return p, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return p, false, diags
	}
	if val.IsNull() {
		return p, false, nil
	}

	ty := val.Type()
	if ty.IsObjectType() || ty.IsMapType() {
		obj, err := convert.Convert(val, cty.Object(map[string]cty.Type{"x": cty.Number, "y": cty.Number}))
		if err != nil {
			return p, false, err
		}
		var cp ctyPoint
		if err := gocty.FromCtyValue(obj, &cp); err != nil {
			return p, false, err
		}

		return core.Point{X: cp.X, Y: cp.Y}, true, nil
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return p, false, fmt.Errorf("cannot convert %s to list of number: %w", ty.FriendlyName(), err)
	}
	var xy []float64
	if err := gocty.FromCtyValue(list, &xy); err != nil {
		return p, false, err
	}
	if len(xy) != 2 {
		return p, false, fmt.Errorf("want [x, y], got %d elements", len(xy))
	}

	return core.Point{X: xy[0], Y: xy[1]}, true, nil
}
