package tally_test

import (
	"fmt"
	"log"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

// ExampleNew demonstrates the basic press-by-press flow of the engine.
func ExampleNew() {
	engine, err := tally.New()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Compose an expression one keypad token at a time.
	engine.PressToken("2")
	engine.PressToken("+")
	engine.PressToken("3")
	engine.PressToken("*")
	engine.PressToken("4")

	// 2. Evaluate. Results are formatted to three decimal places.
	fmt.Println(engine.PressEquals())

	// 3. The buffer survives equals, so the expression can keep growing.
	fmt.Println(engine.Buffer())

	// Output:
	// 14.000
	// 2+3*4
}

// ExampleEngine_PressConvert demonstrates the Convert mode flow: type a
// number, switch modes, and apply an operation from the layout.
func ExampleEngine_PressConvert() {
	engine, err := tally.New()
	if err != nil {
		log.Fatal(err)
	}

	engine.PressToken("10")
	engine.SwitchMode(domain.ModeConvert)

	display, err := engine.PressConvert("Mi to Km")
	if err != nil {
		// Only fires on an operation id missing from the layout.
		log.Fatal(err)
	}
	fmt.Println(display)

	// Output:
	// 16.09
}

// ExampleWithConversion demonstrates extending the conversion table at
// construction time.
func ExampleWithConversion() {
	engine, err := tally.New(
		tally.WithConversion("Hours to Min", func(v float64) float64 { return v * 60 }),
	)
	if err != nil {
		log.Fatal(err)
	}

	engine.PressToken("1.5")
	display, err := engine.PressConvert("Hours to Min")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(display)

	// Output:
	// 90.00
}
