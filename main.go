package main

import "github.com/notargets/blocksparse/cmd"

func main() {
	cmd.Execute()
}
