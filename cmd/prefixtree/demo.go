package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/e11jah/prefixtree"
)

var DemoCmd = cli.Command{
	Action: doDemo,
	Name:   "demo",
	Usage:  "runs insert, lookup, iteration and erase on a small set of keys",
}

func doDemo(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(log)
	if err != nil {
		return err
	}
	return runDemo(ctx.App.Writer, prefixtree.New[int](opts...))
}

func runDemo(w io.Writer, m *prefixtree.Map[int]) error {
	fmt.Fprintf(w, "empty %t\n", m.Empty())

	m.Insert("tito", 1)
	m.Insert("toto", 2)
	m.Insert("toto2", 3)
	*m.Ref("tovo") = 4

	for k, v := range m.All() {
		fmt.Fprintf(w, "iterate %s %d\n", k, v)
	}
	fmt.Fprintf(w, "count toto2 %d\n", m.Count("toto2"))

	m.Erase(m.Begin())
	for it := m.Begin().ReadOnly(); !it.Done(); it = it.Next() {
		fmt.Fprintf(w, "after erasing first %s %d\n", it.Key(), it.Value())
	}

	m.EraseKey("toto2")
	fmt.Fprintf(w, "count toto2 %d\n", m.Count("toto2"))
	for k, v := range m.All() {
		fmt.Fprintf(w, "iterate %s %d\n", k, v)
	}

	for _, key := range []string{"tovo", "toto", "toti", "voto"} {
		v, err := m.At(key)
		if err != nil {
			fmt.Fprintf(w, "at %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(w, "at %s %d\n", key, v)
	}

	fmt.Fprintf(w, "ref voto %d\n", *m.Ref("voto"))
	fmt.Fprintf(w, "count voto %d\n", m.Count("voto"))
	fmt.Fprintf(w, "count v %d\n", m.Count("v"))
	fmt.Fprintf(w, "find voto %t\n", !m.Find("voto").Done())
	fmt.Fprintf(w, "find vo %t\n", !m.Find("vo").Done())

	if err := m.Dump(w); err != nil {
		return err
	}
	if err := m.Check(); err != nil {
		return err
	}

	m.Erase(m.Begin())
	fmt.Fprintf(w, "empty %t\n", m.Empty())
	m.Clear()
	fmt.Fprintf(w, "empty %t\n", m.Empty())
	return nil
}
