package display

import (
	"fmt"
	"io"

	"github.com/backmassage/muxlabel/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, logging.Magenta)
	fmt.Fprint(w, ` __  __            _           _          _
|  \/  |_   ___  _| |    __ _| |__   ___| |
| |\/| | | | \ \/ / |   / _`+"`"+` | '_ \ / _ \ |
| |  | | |_| |>  <| |__| (_| | |_) |  __/ |
|_|  |_|\__,_/_/\_\_____\__,_|_.__/ \___|_|
`)
	if logging.NC != "" {
		fmt.Fprintln(w, logging.NC)
	}
}
