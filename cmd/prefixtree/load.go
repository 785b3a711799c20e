package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/e11jah/prefixtree"
)

var (
	fileFlag = cli.StringFlag{
		Name:     "file",
		Usage:    "file with one key per line",
		Required: true,
	}
	prefixFlag = cli.StringFlag{
		Name:  "prefix",
		Usage: "lists the loaded keys starting with the given prefix",
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "prints the shape of the tree after loading",
	}
)

var LoadCmd = cli.Command{
	Action: doLoad,
	Name:   "load",
	Usage:  "loads keys from a file and verifies the resulting tree",
	Flags: []cli.Flag{
		&fileFlag,
		&prefixFlag,
		&dumpFlag,
	},
}

func doLoad(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(log)
	if err != nil {
		return err
	}
	m := prefixtree.New[int](opts...)

	file, err := os.Open(ctx.String(fileFlag.Name))
	if err != nil {
		return err
	}
	defer file.Close()

	line, skipped := 0, 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		key := scanner.Text()
		if err := m.Validate(key); err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping key")
			skipped++
			continue
		}
		m.Insert(key, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := m.Check(); err != nil {
		return fmt.Errorf("tree is corrupted: %w", err)
	}
	log.Info().
		Int("keys", m.Len()).
		Int("lines", line).
		Int("skipped", skipped).
		Str("policy", cfg.Policy).
		Msg("loaded")

	w := ctx.App.Writer
	if ctx.IsSet(prefixFlag.Name) {
		for k, v := range m.WithPrefix(ctx.String(prefixFlag.Name)) {
			fmt.Fprintf(w, "%s\t%d\n", k, v)
		}
	}
	if ctx.Bool(dumpFlag.Name) {
		return m.Dump(w)
	}
	return nil
}
