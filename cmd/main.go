package main

import "steadystate/internal/cli"

func main() {
	cli.Execute()
}
