package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/tsp"
)

// View titles, in the order Views returns them.
const (
	TitleMST        = "Minimum Spanning Tree (MST)"
	TitleMultigraph = "Multigraph Visualization"
	TitleCircuit    = "Optimal Route (Hamiltonian Circuit)"
)

// ViewEdge is one drawable edge.
type ViewEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// View is one graph to draw. Order lists the stops as entered: a renderer
// styles Order[0] as the start and the last entry as the end.
type View struct {
	Title string     `json:"title"`
	Nodes []string   `json:"nodes"`
	Edges []ViewEdge `json:"edges"`
	Order []string   `json:"order"`
}

// Views builds the MST, multigraph and circuit views of res. A view whose
// stage did not complete is left out.
func Views(res *tsp.Result, names core.NamedOracle) []View {
	if res == nil {
		return nil
	}
	nodes := core.Names(names, res.Nodes)
	order := core.Names(names, res.Stops)

	views := make([]View, 0, 3)
	add := func(title string, edges []core.Edge) {
		views = append(views, View{
			Title: title,
			Nodes: nodes,
			Edges: ViewEdges(names, edges),
			Order: order,
		})
	}
	if res.Tree != nil {
		add(TitleMST, res.Tree.Edges())
	}
	if len(res.Multigraph.Edges) > 0 {
		add(TitleMultigraph, res.Multigraph.Edges)
	}
	if len(res.Tour.Nodes) > 0 {
		add(TitleCircuit, res.Tour.Legs(names))
	}

	return views
}

// ViewEdges names the endpoints of edges.
func ViewEdges(names core.NamedOracle, edges []core.Edge) []ViewEdge {
	out := make([]ViewEdge, len(edges))
	for i, e := range edges {
		out[i] = ViewEdge{From: names.Name(e.From), To: names.Name(e.To), Weight: e.Weight}
	}

	return out
}

// WriteViews encodes views to w as an indented JSON array.
func WriteViews(w io.Writer, views []View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(views)
}
