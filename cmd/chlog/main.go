package main

import (
	"os"

	"github.com/raveheart1/chlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
