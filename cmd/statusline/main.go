package main

import (
	"os"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Never crash the render cycle
			os.Exit(0)
		}
	}()

	_ = newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}
