package main

import (
	"fmt"
	"os"

	"github.com/offlinefirst/dragscroll/internal/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dragscroll: %v\n", err)
		os.Exit(1)
	}
}
