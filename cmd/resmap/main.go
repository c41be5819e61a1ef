package main

import "resmap/internal/cli"

func main() {
	cli.Execute()
}
