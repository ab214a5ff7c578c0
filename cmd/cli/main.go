package main

import (
	"github.com/carlmjohnson/exitcode"
)

func main() {
	root, e := newRootCmd()
	err := root.Execute()
	e.close()
	exitcode.Exit(err)
}
