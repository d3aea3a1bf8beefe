// Command nfa2regex reads an automaton description and prints an equivalent
// regular expression.
//
//	nfa2regex [flags] [file]
//
// With no file, or with file "-", the description is read from standard
// input in the text format unless -format says otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/geange/gnfa"
	"github.com/geange/gnfa/internal/format"
)

var (
	dashv           bool
	dashh           bool
	dashtrim        bool
	dashfreshstart  bool
	dashfreshaccept bool
	dashformat      string
	dashorder       string
	dashdot         string
)

func init() {
	flag.BoolVar(&dashv, "v", false, "log every conversion step")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.BoolVar(&dashtrim, "trim", false, "drop states on no path from start to accept before eliminating")
	flag.BoolVar(&dashfreshstart, "fresh-start", false, "add a new start state when the start state has incoming edges")
	flag.BoolVar(&dashfreshaccept, "fresh-accept", false, "always end in a new accept state without outgoing edges")
	flag.StringVar(&dashformat, "format", "", "input format: text or yaml (default: from the file extension)")
	flag.StringVar(&dashorder, "order", "lowest", "elimination order: lowest or fewest")
	flag.StringVar(&dashdot, "dot", "", "directory to write one graphviz file per step into")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("nfa2regex: ")
	flag.Parse()
	if dashh {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		exitf("usage: %s [flags] [file]\n", os.Args[0])
	}

	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	a, err := load(path)
	if err != nil {
		log.Fatal(err)
	}

	opts, err := options()
	if err != nil {
		exitf("%s\n", err)
	}
	r, err := gnfa.ToRegex(a, opts...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render(r))
}

func load(path string) (*gnfa.Automaton, error) {
	f := format.Format(dashformat)
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		if f == "" {
			f = format.Text
		}
		return format.Parse("stdin", data, f)
	}
	if f == "" {
		f = format.Detect(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return format.Parse(path, data, f)
}

func options() ([]gnfa.Option, error) {
	var opts []gnfa.Option
	switch dashorder {
	case "lowest":
		opts = append(opts, gnfa.WithOrder(gnfa.LowestID))
	case "fewest":
		opts = append(opts, gnfa.WithOrder(gnfa.FewestEdges))
	default:
		return nil, fmt.Errorf("unknown -order %q (want lowest or fewest)", dashorder)
	}
	if dashtrim {
		opts = append(opts, gnfa.WithTrim())
	}
	if dashfreshstart {
		opts = append(opts, gnfa.WithFreshStart())
	}
	if dashfreshaccept {
		opts = append(opts, gnfa.WithFreshAccept())
	}

	var steps []gnfa.StepFunc
	if dashv {
		steps = append(steps, logStep)
	}
	if dashdot != "" {
		if err := os.MkdirAll(dashdot, 0o755); err != nil {
			return nil, err
		}
		steps = append(steps, writeDot(dashdot))
	}
	if len(steps) > 0 {
		opts = append(opts, gnfa.WithStepCallback(func(g *gnfa.GNFA, step gnfa.Step) {
			for _, fn := range steps {
				fn(g, step)
			}
		}))
	}
	return opts, nil
}

func logStep(g *gnfa.GNFA, step gnfa.Step) {
	log.Printf("%s: %d states, %d edges", step, g.NumStates(), g.NumEdges())
	if step.Phase == gnfa.PhaseTwoState {
		for _, e := range g.Edges() {
			log.Printf("  %d -> %d %q", e.From, e.To, e.Label)
		}
	}
}

// writeDot returns a step callback that saves every step as NN-step.dot in
// dir. Write errors are logged, not fatal.
func writeDot(dir string) gnfa.StepFunc {
	counter := 0
	return func(g *gnfa.GNFA, step gnfa.Step) {
		counter++
		name := filepath.Join(dir, fmt.Sprintf("%02d-%s.dot", counter, step))
		if err := os.WriteFile(name, []byte(g.Dot()), 0o644); err != nil {
			log.Printf("writing %s: %s", name, err)
		}
	}
}

func render(r *gnfa.Regex) string {
	switch {
	case r.Empty:
		return "∅"
	case r.Expr == "":
		return "ε"
	}
	return r.Expr
}
