package main

import "github.com/zbiljic/commitlint/cmd"

func main() {
	cmd.Execute()
}
