package main

import (
	"os"

	"github.com/carlmjohnson/exitcode"

	"github.com/Utility-Gods/charswap/internal/app"
	"github.com/Utility-Gods/charswap/internal/cli"
	"github.com/Utility-Gods/charswap/internal/logger"
)

func main() {
	exitcode.Exit(cli.RunCLI(app.NewApp(nil, logger.L()), os.Stdin, os.Stdout))
}
