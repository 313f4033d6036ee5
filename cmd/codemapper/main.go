package main

import "github.com/codemapper/codemapper/internal/cli"

func main() {
	cli.Execute()
}
