package main

import "github.com/pinpoint-cli/pinpoint/cmd"

func main() {
	cmd.Execute()
}
