package main

import (
	"os"

	"github.com/cheatsheets/client-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
