package main

import (
	"fmt"
	"os"

	"github.com/plus3/gdcore/cmd/gdcore/app"
	inspector_ebiten "github.com/plus3/gdcore/inspector/ebiten"
)

func main() {
	app.Viewer = inspector_ebiten.Run

	cmd := app.New()
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
