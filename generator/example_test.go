// File: generator/example_test.go
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/pacmaze/generator"
)

////////////////////////////////////////////////////////////////////////////////
// Example: a small seeded board
////////////////////////////////////////////////////////////////////////////////

// ExampleRun generates a 12×13 board with one teleporter pair.
func ExampleRun() {
	cfg := generator.Config{
		Bounds:      generator.Bounds{Width: 12, Height: 13},
		Path:        generator.Span{Min: 10, Max: 60},
		Teleporter:  generator.Span{Min: 1, Max: 1},
		BuilderPool: generator.PoolConfig{ManagerCount: generator.Span{Min: 2, Max: 2}},
		Builder:     generator.BuilderConfig{TurnDistance: generator.Span{Min: 2, Max: 4}},

		GenerationConstraints: generator.Constraints{MaxAttempts: 1000},
	}
	res, err := generator.Run(cfg, generator.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d valid=%v teleporters=%d regions=%d\n",
		res.Grid.Width, res.Grid.Height, res.Valid, res.Stats.Teleporters, res.Stats.Regions)
	// Output:
	// 12x13 valid=true teleporters=1 regions=1
}
