package main

import "github.com/theirongolddev/pangan/cmd"

func main() {
	cmd.Execute()
}
