package refine_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/flowsat/numberlink/grid"
	"github.com/flowsat/numberlink/refine"
	"github.com/flowsat/numberlink/render"
)

// ExampleRun solves a trivial 2x2 puzzle: a single label A at opposite
// corners, each free cell bending to join them with zero cycle repairs.
func ExampleRun() {
	labels := grid.NewAlphabet()
	a := labels.Intern('A')
	rows := [][]grid.Cell{
		{{IsEndpoint: true, Label: a}, {}},
		{{}, {IsEndpoint: true, Label: a}},
	}
	g, err := grid.New(rows, labels)
	if err != nil {
		fmt.Println(err)

		return
	}

	result, err := refine.Run(context.Background(), g)
	if err != nil {
		fmt.Println(err)

		return
	}

	var buf bytes.Buffer
	if err := render.Grid(&buf, result.Grid, g.Labels()); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(buf.String())

	// Output:
	// A ┐
	// └ A
}
