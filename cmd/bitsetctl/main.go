package main

import "github.com/hupe1980/bitarray/cmd/bitsetctl/cmd"

func main() {
	cmd.Execute()
}
