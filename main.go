package main

import "param-host/cmd"

func main() {
	cmd.Execute()
}
