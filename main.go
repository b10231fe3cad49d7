package main

import "github.com/iksnae/session-context/cmd"

func main() {
	cmd.Execute()
}
