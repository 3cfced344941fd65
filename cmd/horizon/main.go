package main

import "github.com/horizonbank/horizon/cmd/horizon/cmd"

func main() {
	cmd.Execute()
}
