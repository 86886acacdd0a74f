package main

import (
	"github.com/bigrep/jsnot/pkg/cli"
)

func main() {
	cli.RunRootCommand()
}
