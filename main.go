package main

import (
	"os"

	"github.com/laipz8200/anime-librarian/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
