package main

import (
	"github.com/siddhi-bansal/focus-flow/internal/cli"
)

func main() {
	cli.Execute()
}
