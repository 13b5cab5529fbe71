package main

import "github.com/soleniar/ctrlwave/cmd/wavectl/cmd"

func main() {
	cmd.Execute()
}
