package main

import "github.com/uyouii/sample-statistics/cli"

func main() {
	cli.Execute()
}
