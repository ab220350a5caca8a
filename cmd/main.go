package main

import (
	"os"

	"github.com/penwyp/go-conky-deadlines/commands"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

func main() {
	err := commands.Execute()
	util.CloseLogger()
	if err != nil {
		os.Exit(commands.ReportError(os.Stdout, os.Stderr, err))
	}
}
