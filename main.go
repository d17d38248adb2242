package main

import "github.com/amterp/camtint/internal/cli"

func main() {
	cli.Run()
}
