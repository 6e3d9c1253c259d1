package main

import "github.com/stuarthighley/wadcodec/cmd"

func main() {
	cmd.Execute()
}
