package main

import "lead-consolidator/cmd"

func main() {
	cmd.Execute()
}
