package main

import "github.com/aalvaropc/zoneinfo/internal/cli"

func main() {
	cli.Execute()
}
