// ulidgen generates ULIDs, optionally pinned to a user-supplied point in time.
package main

import (
	"fmt"
	"os"

	"ulidgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
