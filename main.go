package main

import "github.com/kubeworks/chartgen/internal/cmd"

func main() {
	cmd.Execute()
}
