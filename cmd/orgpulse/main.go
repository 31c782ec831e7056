// main is the entry point for the orgpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/paystackoss/orgpulse/cmd"
	"github.com/paystackoss/orgpulse/internal/runstore"
)

func main() {
	err := cmd.Execute()
	runstore.CloseStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
