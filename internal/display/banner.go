package display

import (
	"fmt"
	"os"

	"github.com/pixelfold/webpick/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `__        __   _           _      _
\ \      / /__| |__  _ __ (_) ___| | __
 \ \ /\ / / _ \ '_ \| '_ \| |/ __| |/ /
  \ V  V /  __/ |_) | |_) | | (__|   <
   \_/\_/ \___|_.__/| .__/|_|\___|_|\_\
                    |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
