package main

import (
	"context"
	"os"

	"github.com/doeshing/check-cdap/internal/infrastructure/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], cli.Options{}))
}
