package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spiffcs/sweep/cmd"
	"github.com/spiffcs/sweep/internal/sweep"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		if errors.Is(err, sweep.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Cancelled. Nothing was deleted.")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
