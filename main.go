package main

import "rush/cmd"

func main() {
	cmd.Execute()
}
