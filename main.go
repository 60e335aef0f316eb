package main

import "daily-diet/cmd"

func main() {
	cmd.Execute()
}
