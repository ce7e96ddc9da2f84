package main

import "palaver/cmd"

func main() {
	cmd.Execute()
}
