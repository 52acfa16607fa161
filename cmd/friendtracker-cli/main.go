package main

import "friendtracker/cmd/friendtracker-cli/cmd"

func main() {
	cmd.Execute()
}
