// cmd/rxnblast/main.go
package main

import (
	"fmt"
	"os"

	"rxnblast/cmd/rxnblast/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
