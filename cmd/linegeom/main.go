package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"linegeom/internal/canvas"
	"linegeom/internal/geom"
	"linegeom/internal/report"
	"linegeom/internal/tui"
)

func main() {
	data := flag.String("data", "linesData.txt", "line data file (whitespace or .csv)")
	plain := flag.Bool("plain", false, "print every line set and exit")
	debug := flag.String("debug", "", "write debug log to `file`")
	width := flag.Int("width", canvas.DefaultWidth, "grid width in cells")
	height := flag.Int("height", canvas.DefaultHeight, "grid height in cells")
	flag.Parse()
	if flag.NArg() > 0 {
		*data = flag.Arg(0)
	}
	if *width < 2 || *height < 2 {
		log.Fatalf("grid must be at least 2x2, got %dx%d", *width, *height)
	}
	opts := []canvas.Option{canvas.WithSize(*width, *height)}

	if *plain {
		if err := printSets(os.Stdout, *data, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *debug != "" {
		f, err := tea.LogToFile(*debug, "linegeom")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	p := tea.NewProgram(tui.NewWithPath(*data, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// printSets writes the report of every set in path, the way the menu's
// shape option shows one.
func printSets(w io.Writer, path string, opts []canvas.Option) error {
	sets, err := geom.LoadLineSets(path)
	if err != nil {
		return err
	}
	for i, set := range sets {
		c, q, err := canvas.RenderQuadrilateral(set, opts...)
		if err != nil {
			return fmt.Errorf("set %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%s\n", report.LineSet(i+1, set))
		if err := c.Display(w); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", report.Shape(set, q))
	}
	return nil
}
