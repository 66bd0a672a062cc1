package main

import "github.com/consensys/tinygroth16/cmd"

func main() {
	cmd.Execute()
}
