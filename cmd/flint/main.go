// Package main provides the Flint CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Flint %s\n", version)
		return
	}

	fmt.Println("Flint - Shape-polymorphic tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Examples live under examples/; see examples/digits for a")
	fmt.Println("complete training run.")
}
