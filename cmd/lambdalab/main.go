package main

import "github.com/charmingruby/lambdalab/internal/cli"

func main() {
	cli.Execute()
}
