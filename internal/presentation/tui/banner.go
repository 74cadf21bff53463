package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown at the start of an
// interactive session. The palette echoes the classic olive theme of the
// desktop calculator this engine grew out of.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String(" _        _ _       ").Foreground(p.Color("#AEBD93"))
	s2 := termenv.String("| |_ __ _| | |_   _ ").Foreground(p.Color("#9DB07F"))
	s3 := termenv.String("| __/ _` | | | | | |").Foreground(p.Color("#8CA36B"))
	s4 := termenv.String("| || (_| | | | |_| |").Foreground(p.Color("#7A8450"))
	s5 := termenv.String(" \\__\\__,_|_|_|\\__, |").Foreground(p.Color("#6B7544"))
	s6 := termenv.String("              |___/ ").Foreground(p.Color("#484F2B"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Print(s6)
	fmt.Printf(" v%s\n\n", version)
}
