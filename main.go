package main

import "github.com/kazuma-desu/banner/cmd"

func main() {
	cmd.Execute()
}
