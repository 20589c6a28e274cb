package rolescalc

import (
	"context"
	"sort"

	"github.com/jcoreio/roles-calc/pkg/rolesource"
)

// ApplySource declares inheritance edges from every definition the source
// yields. Definitions are applied in sorted role-name order, so repeated
// loads of the same source leave the graph in the same state.
func (c *Calc) ApplySource(ctx context.Context, src rolesource.Source) error {
	defs, err := src.Load(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		if len(def.Extends) == 0 {
			continue
		}
		if err := c.Extend(name, def.Extends); err != nil {
			return err
		}
	}
	return nil
}

// NewFromSource creates a calculator and seeds its inheritance graph from
// the source's definitions.
func NewFromSource(ctx context.Context, src rolesource.Source, opts ...Option) (*Calc, error) {
	calc, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := calc.ApplySource(ctx, src); err != nil {
		return nil, err
	}
	return calc, nil
}
