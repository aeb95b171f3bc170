package main

import "heroes/cmd/client/cmd"

func main() {
	cmd.Execute()
}
