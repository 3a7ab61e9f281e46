package main

import (
	"os"

	"github.com/dwilk016/quizdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
