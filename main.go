package main

import "github.com/douhashi/gh-labels/cmd"

func main() {
	cmd.Execute()
}
