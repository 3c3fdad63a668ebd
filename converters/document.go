package converters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// MaxOrder is the largest vertex count a document may declare. Documents
// come from files, so Order is checked before any allocation.
const MaxOrder = 1 << 20

var (
	// ErrUnknownFormat indicates LoadFile could not infer the encoding from
	// the file extension.
	ErrUnknownFormat = errors.New("converters: unknown document format")

	// ErrOrderTooLarge indicates a document declaring more than MaxOrder vertices.
	ErrOrderTooLarge = errors.New("converters: order exceeds MaxOrder")

	// ErrNegativeColor indicates a document color below zero; uncolored
	// vertices are written as null.
	ErrNegativeColor = errors.New("converters: color must be non-negative or null")
)

// Document is the serialized form of a colored graph.
type Document struct {
	Order  int      `yaml:"order" json:"order"`
	Edges  [][2]int `yaml:"edges" json:"edges"`
	Colors []*int   `yaml:"colors,omitempty" json:"colors,omitempty"`
}

// FromGraph snapshots g into a Document. Edges are listed once with U<V in
// lexicographic order. Colors are omitted when no vertex is colored.
func FromGraph(g *core.Graph) Document {
	if g == nil {
		return Document{}
	}

	doc := Document{Order: g.Order()}
	edges := g.Edges()
	doc.Edges = make([][2]int, len(edges))
	for i, e := range edges {
		doc.Edges[i] = [2]int{e.U, e.V}
	}

	colors := g.Colors()
	if colors.Distinct() == 0 {
		return doc
	}
	doc.Colors = make([]*int, len(colors))
	for u, c := range colors {
		if c.Assigned() {
			v := int(c)
			doc.Colors[u] = &v
		}
	}

	return doc
}

// Graph builds a new core.Graph from the document.
//
// Errors: ErrOrderTooLarge, ErrNegativeColor, and the core sentinels for
// negative order, bad endpoints, loops, duplicate edges and a colors list
// whose length differs from Order.
func (d Document) Graph() (*core.Graph, error) {
	if d.Order > MaxOrder {
		return nil, fmt.Errorf("converters: order=%d > %d: %w", d.Order, MaxOrder, ErrOrderTooLarge)
	}
	g, err := core.NewGraph(d.Order)
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	for i, e := range d.Edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("converters: edges[%d]: %w", i, err)
		}
	}
	if len(d.Colors) == 0 {
		return g, nil
	}

	colors := make(core.Coloring, len(d.Colors))
	for u, c := range d.Colors {
		colors[u] = core.Uncolored
		if c == nil {
			continue
		}
		if *c < 0 {
			return nil, fmt.Errorf("converters: colors[%d]=%d: %w", u, *c, ErrNegativeColor)
		}
		colors[u] = core.Color(*c)
	}
	if err = g.SetColors(colors); err != nil {
		return nil, fmt.Errorf("converters: colors: %w", err)
	}

	return g, nil
}
