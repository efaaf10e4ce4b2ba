// Command tour loads a distance table, collects the required stops and prints
// every stage of the approximate tour: the optimized route, the MST, the
// odd-degree vertices, the greedy matching, the multigraph and the final
// circuit.
//
//	tour -matrix data.json -start A -pickups B,C -dropoffs D -end A
//	tour -matrix br17.atsp -format tsplib -interactive
//	tour -random 12 -seed 7 -start A -end A -pickups C,F -exact
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/tourkit/builder"
	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/prim_kruskal"
	"github.com/katalvlaran/tourkit/report"
	"github.com/katalvlaran/tourkit/tsp"
)

var flagMatrix = flag.String(
	"matrix",
	"",
	"Path to the distance table",
)

var flagFormat = flag.String(
	"format",
	"json",
	"Distance table format: json or tsplib",
)

var flagStart = flag.String(
	"start",
	"",
	"Start node (matched exactly, else upper-cased)",
)

var flagEnd = flag.String(
	"end",
	"",
	"End node (matched exactly, else upper-cased)",
)

var flagPickups = flag.String(
	"pickups",
	"",
	"Comma-separated pick-up zones (matched like -start)",
)

var flagDropoffs = flag.String(
	"dropoffs",
	"",
	"Comma-separated drop-off zones (matched like -start)",
)

var flagInteractive = flag.Bool(
	"interactive",
	false,
	"Ask for the stops on standard input",
)

var flagMST = flag.String(
	"mst",
	prim_kruskal.MethodPrim,
	"MST algorithm: prim or kruskal",
)

var flagTwoOpt = flag.Bool(
	"twoopt",
	false,
	"Refine the final circuit with 2-opt",
)

var flagExact = flag.Bool(
	"exact",
	false,
	"Also compute the exact optimum (small stop sets only)",
)

var flagRandom = flag.Int(
	"random",
	0,
	"Generate a random complete table with this many nodes instead of -matrix",
)

var flagSeed = flag.Int64(
	"seed",
	42,
	"Seed for -random",
)

var flagViews = flag.String(
	"views",
	"",
	"Write the MST, multigraph and circuit views as JSON to this path",
)

func validateFlags() error {
	if n := *flagRandom; n < 0 {
		return fmt.Errorf("random table size must be non-negative, got %d", n)
	}
	if *flagMatrix == "" && *flagRandom == 0 {
		return fmt.Errorf("missing distance table (-matrix or -random)")
	}
	if f := *flagFormat; f != "json" && f != "tsplib" {
		return fmt.Errorf("format must be json or tsplib, got %q", f)
	}
	if m := *flagMST; m != prim_kruskal.MethodPrim && m != prim_kruskal.MethodKruskal {
		return fmt.Errorf("mst must be %s or %s, got %q", prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal, m)
	}
	if *flagInteractive {
		return nil
	}
	if strings.TrimSpace(*flagStart) == "" {
		return fmt.Errorf("missing start node (-start) without -interactive")
	}
	if strings.TrimSpace(*flagEnd) == "" {
		return fmt.Errorf("missing end node (-end) without -interactive")
	}

	return nil
}

func loadTable(path, format string) (*distance.Table, error) {
	if format == "json" {
		return distance.LoadFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", distance.ErrDataLoad, err)
	}
	defer f.Close()

	return distance.LoadTSPLIB(f)
}

// randomTable builds an n-node symmetric instance named A, B, …, Z, AA, …
// with weights in [1, 100].
func randomTable(n int, seed int64) (*distance.Table, error) {
	return builder.Complete(n,
		builder.WithIDScheme(builder.ExcelColumnIDFn),
		builder.WithSeed(seed),
		builder.WithUniformWeight(1, 100),
	)
}

func main() {
	flag.Parse()
	if err := validateFlags(); err != nil {
		log.Fatalf("Invalid flags: %s", err)
	}

	var (
		tab *distance.Table
		err error
	)
	if *flagRandom > 0 {
		tab, err = randomTable(*flagRandom, *flagSeed)
	} else {
		tab, err = loadTable(*flagMatrix, *flagFormat)
	}
	if err != nil {
		log.Fatalf("Error loading distance table: %s", err)
	}

	p := &report.Printer{W: os.Stdout, Names: tab}
	p.Header("Distance Table")
	p.Matrix()

	var stops tsp.Stops
	if *flagInteractive {
		p.Header("Set Start, End, Pick-Up and Drop-Off Zones")
		if stops, err = newPrompter(os.Stdin, os.Stdout, os.Stderr, tab).stops(); err != nil {
			log.Fatalf("Error reading stops: %s", err)
		}
	} else {
		stops = tsp.Stops{
			Start:    resolve(tab, *flagStart),
			Pickups:  resolveAll(tab, splitList(*flagPickups)),
			Dropoffs: resolveAll(tab, splitList(*flagDropoffs)),
			End:      resolve(tab, *flagEnd),
		}
	}

	opts := []tsp.Option{tsp.WithMSTMethod(*flagMST), tsp.WithStageHook(p.Stage)}
	if *flagTwoOpt {
		opts = append(opts, tsp.WithTwoOpt())
	}
	res, err := tsp.SolveStops(tab, stops, opts...)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	if *flagExact {
		p.Header("Exact Optimum (Held-Karp)")
		if best, err := tsp.Exact(tab, res.Nodes); err != nil {
			log.Printf("Exact search skipped: %s", err)
		} else {
			p.Circuit(best)
		}
	}

	if *flagViews != "" {
		if err := writeViews(*flagViews, report.Views(res, tab)); err != nil {
			log.Fatalf("Error writing views: %s", err)
		}
		log.Printf("Views written to %s", *flagViews)
	}
	if err := p.Err(); err != nil {
		log.Fatalf("Error writing output: %s", err)
	}
}

func writeViews(path string, views []report.View) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteViews(f, views); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
