package main

import (
	"os"

	"github.com/lumoslab/physchem/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
