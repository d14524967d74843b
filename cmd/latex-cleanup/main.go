package main

import (
	"latex-cleanup/internal/cli"
)

func main() {
	cli.Execute()
}
