/*
Package tally is a two-mode calculator engine: standard arithmetic and unit
conversion.

It separates the calculation core (expression accumulator, conversion
registry, mode state) from the rendering host. The engine exposes discrete
button-level events and returns display-ready strings plus declarative
keypad layouts; how those are drawn (terminal grid, HTTP client, MCP
agent) is entirely the host's concern. This Hexagonal Architecture allows
Tally to be embedded in any interface.

# Key Features

  - Constrained evaluation: expressions are parsed over a closed arithmetic
    grammar (digits, ".", "(", ")", "+", "-", "*", "/", "%"); arbitrary
    input can never reach an interpreter.
  - Data-driven conversions: the unit table is a registry of named pure
    functions; extra operations can be added programmatically or from a
    YAML units file and appear in the Convert keypad automatically.
  - Declarative layouts: each mode yields an ordered set of (id, row, col)
    placements; the engine attaches no geometry semantics beyond that.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/tally"
		"github.com/aretw0/tally/pkg/domain"
	)

	func main() {
		eng, err := tally.New()
		if err != nil {
			log.Fatal(err)
		}

		// Standard mode: compose an expression one button at a time.
		eng.PressToken("2")
		eng.PressToken("+")
		eng.PressToken("2")
		fmt.Println(eng.PressEquals()) // "4.000"

		// Convert mode: the buffer holds a bare number.
		eng.PressClear()
		eng.PressToken("10")
		eng.SwitchMode(domain.ModeConvert)
		display, err := eng.PressConvert("Mi to Km")
		if err != nil {
			log.Fatal(err) // only fires on an operation id not in the layout
		}
		fmt.Println(display) // "16.09"
	}

Every event is handled synchronously to completion and no call can panic
the engine: user-level failures come back as the "Error" display sentinel.
The engine itself is not goroutine-safe; concurrent hosts must serialize
calls (see internal/adapters/http for an example).
*/
package tally
