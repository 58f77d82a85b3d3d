package main

import "github.com/katalvlaran/sigdiff/cmd/sigdiff/commands"

func main() {
	commands.Execute()
}
