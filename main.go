package main

import "burrow/cmd"

func main() {
	cmd.Execute()
}
