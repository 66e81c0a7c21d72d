package main

import "github.com/ytget/tubefetch/cmd"

func main() {
	cmd.Execute()
}
