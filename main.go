package main

import "github.com/kvload/kvload/cmd"

func main() {
	cmd.Execute()
}
