package main

import "unity-bridge/cmd"

func main() {
	cmd.Execute()
}
