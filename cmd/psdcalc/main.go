// cmd/psdcalc/main.go
package main

import (
	"os"

	"github.com/katalvlaran/psdkit/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
