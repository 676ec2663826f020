package main

import "github.com/gnames/gnnutri/cmd"

func main() {
	cmd.Execute()
}
