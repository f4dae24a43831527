package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oy3o/compact/cmd/compact/commands"
)

func main() {
	app := commands.NewApp(os.Stdout)

	err := app.Run(context.Background(), os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
