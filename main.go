package main

import (
	"github.com/altingia/juicebox-scripts/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
