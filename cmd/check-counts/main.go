// Command check-counts prints product, category and testimonial counts.
package main

import (
	"os"

	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
)

func main() {
	os.Exit(diag.Main(diag.NewCountsCommand))
}
