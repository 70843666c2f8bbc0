package mapfile

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/lvsearch/builder"
)

// Encode writes ds as an HCL map file that Parse reads back into an
// equivalent dataset: same cities, neighbor order, weights, heuristic and
// layout.
func Encode(w io.Writer, ds builder.Dataset) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if ds.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(ds.Name))
	}
	if goal := ds.Heuristic.Goal(); goal != "" {
		body.SetAttributeValue("goal", cty.StringVal(goal))
	}

	for _, id := range ds.Graph.Vertices() {
		body.AppendNewline()
		city := body.AppendNewBlock("city", []string{id}).Body()

		nbrs, err := ds.Graph.NeighborIDs(id)
		if err != nil {
			return err
		}
		list, err := gocty.ToCtyValue(nbrs, cty.List(cty.String))
		if err != nil {
			return err
		}
		if len(nbrs) == 0 {
			list = cty.ListValEmpty(cty.String)
		}
		city.SetAttributeValue("neighbors", list)

		if p, ok := ds.Positions[id]; ok {
			city.SetAttributeValue("position", cty.TupleVal([]cty.Value{
				cty.NumberFloatVal(p.X), cty.NumberFloatVal(p.Y),
			}))
		}
		if v, ok := ds.Heuristic.Lookup(id); ok {
			city.SetAttributeValue("heuristic", cty.NumberIntVal(v))
		}
	}

	for _, e := range ds.Graph.Edges() {
		body.AppendNewline()
		road := body.AppendNewBlock("road", []string{e.From, e.To}).Body()
		road.SetAttributeValue("distance", cty.NumberIntVal(e.Weight))
	}

	_, err := f.WriteTo(w)

	return err
}
