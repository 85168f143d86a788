// Command list-categories prints every product category with its image URL.
package main

import (
	"os"

	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
)

func main() {
	os.Exit(diag.Main(diag.NewCategoriesCommand))
}
