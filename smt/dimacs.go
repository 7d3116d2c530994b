package smt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// clauses collects the CNF translation of a circuit.
// It implements gini's inter.Adder.
type clauses struct {
	list   [][]z.Lit
	cur    []z.Lit
	nbVars int
}

func (cs *clauses) Add(m z.Lit) {
	if m == z.LitNull {
		cs.list = append(cs.list, cs.cur)
		cs.cur = nil
		return
	}
	if v := int(m.Var()); v > cs.nbVars {
		cs.nbVars = v
	}
	cs.cur = append(cs.cur, m)
}

func (cs *clauses) unit(m z.Lit) {
	cs.Add(m)
	cs.Add(z.LitNull)
}

// translate returns the clauses stating that every root holds.
// The circuits defining extra are translated too, without being asserted.
func (ctx *Context) translate(roots []Bool, extra ...z.Lit) *clauses {
	var cs clauses
	ms := lits(roots)
	ctx.c.CnfSince(&cs, nil, append(append([]z.Lit{}, ms...), extra...)...)
	for _, m := range ms {
		cs.unit(m)
	}
	return &cs
}

// WriteDimacs writes, in the DIMACS CNF format, the clauses stating that every root holds.
// Comment lines bind the name of every declared symbol to its variables, least significant first.
func WriteDimacs(w io.Writer, ctx *Context, roots ...Bool) error {
	cs := ctx.translate(roots)
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", cs.nbVars, len(cs.list)); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	for _, name := range ctx.Symbols() {
		vars := make([]string, len(ctx.symbols[name]))
		for i, m := range ctx.symbols[name] {
			vars[i] = strconv.Itoa(m.Dimacs())
		}
		if _, err := fmt.Fprintf(w, "c %s=%s\n", name, strings.Join(vars, ",")); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	for _, clause := range cs.list {
		strClause := make([]string, len(clause))
		for i, m := range clause {
			strClause[i] = strconv.Itoa(m.Dimacs())
		}
		if _, err := fmt.Fprintf(w, "%s 0\n", strings.Join(strClause, " ")); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}
