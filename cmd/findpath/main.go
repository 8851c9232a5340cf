// Command findpath locates a file by searching the application directory,
// the current directory, the system directories and PATH, in that order.
//
// Usage:
//
//	findpath [-c] [-m <manifest>] [-nologo] [-o] [-v] [-xm] [-?] <filename>
package main

import (
	"context"
	"os"

	"github.com/jongio/findpath/cli"
	"github.com/jongio/findpath/cliout"
	"github.com/jongio/findpath/logutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logutil.SetupLogger(false, logutil.StructuredFromEnv())
	app := cli.NewApp(cliout.New(os.Stdout, os.Stderr))
	return app.Run(context.Background(), args)
}
