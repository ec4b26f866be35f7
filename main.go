package main

import "hotserve/cmd"

func main() {
	cmd.Execute()
}
