package main

import "github.com/calbec/medialog/cmd"

func main() {
	cmd.Execute()
}
