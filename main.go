package main

import (
	"github.com/docukv/djson/cmd"
)

func main() {
	cmd.Execute()
}
