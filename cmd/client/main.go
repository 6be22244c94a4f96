package main

import "invtrack/cmd/client/cmd"

func main() {
	cmd.Execute()
}
