/*
Package domain contains the core domain models for the Tally engine.

It defines the fundamental entities of the calculator: the operating Mode,
the declarative keypad Layout, and the shared error values. This package is
kept pure and free of external dependencies like I/O or presentation,
following Hexagonal Architecture principles.

# Key Entities

  - Mode: One of two fixed states (Standard, Convert) selecting which keys
    and operations are active.
  - Layout: An ordered set of (id, row, col) placements consumed by a
    renderer. The core attaches no geometry or styling semantics beyond
    row/column identity.
  - Key: A single placement within a Layout.
*/
package domain
