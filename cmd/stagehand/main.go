package main

import "github.com/Paintersrp/stagehand/internal/cli"

func main() {
	cli.Execute()
}
