package main

import "github.com/keurnel/x86dis/cmd/x86dis/cmd"

func main() {
	cmd.Execute()
}
