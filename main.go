package main

import "shireesh.com/sogen/cmd"

func main() {
	cmd.Execute()
}
