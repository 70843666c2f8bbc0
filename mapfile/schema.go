package mapfile

import "github.com/hashicorp/hcl/v2"

// hclMapFile is the top-level structure of a map file for decoding.
type hclMapFile struct {
	Name   string     `hcl:"name,optional"`
	Goal   string     `hcl:"goal,optional"`
	Cities []*hclCity `hcl:"city,block"`
	Roads  []*hclRoad `hcl:"road,block"`
}

type hclCity struct {
	ID        string         `hcl:"id,label"`
	Neighbors []string       `hcl:"neighbors,optional"`
	Position  hcl.Expression `hcl:"position,optional"`
	Heuristic *int64         `hcl:"heuristic,optional"`
}

type hclRoad struct {
	From     string `hcl:"from,label"`
	To       string `hcl:"to,label"`
	Distance int64  `hcl:"distance"`
}

// ctyPoint is the object form of a position.
type ctyPoint struct {
	X float64 `cty:"x"`
	Y float64 `cty:"y"`
}
