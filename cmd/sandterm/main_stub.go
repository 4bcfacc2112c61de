//go:build !term

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The terminal build of sandterm requires the term build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags term ./cmd/sandterm` or build with `-tags term`.")
	os.Exit(2)
}
