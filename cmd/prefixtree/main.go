package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/prefixtree <command> <flags>

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "reads tree settings from the given file, defaults only if empty",
		Value: "",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "logs every edge split, merge and label rewrite",
	}
	policyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "edge label policy, one of owned or shared",
	}
	alphabetFlag = cli.StringFlag{
		Name:  "alphabet",
		Usage: "key alphabet, one of extended, ascii, lower or ctoken",
	}
)

var commands = []*cli.Command{
	&DemoCmd,
	&LoadCmd,
}

func main() {
	app := &cli.App{
		Name:  "prefixtree",
		Usage: "compressed prefix tree toolbox",
		Flags: []cli.Flag{
			&configFlag,
			&debugFlag,
			&policyFlag,
			&alphabetFlag,
		},
		Commands: commands,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
