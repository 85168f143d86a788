// Command check-sections prints the homepage sections in display order.
package main

import (
	"os"

	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
)

func main() {
	os.Exit(diag.Main(diag.NewSectionsCommand))
}
