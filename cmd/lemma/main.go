package main

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/lemma/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
