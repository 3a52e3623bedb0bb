package main

import "github.com/tcztzy/wenyan/internal/cli"

func main() {
	cli.Execute()
}
