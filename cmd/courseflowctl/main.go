package main

import (
	"github.com/mihara/courseflow/internal/cli"
)

func main() {
	cli.Execute()
}
