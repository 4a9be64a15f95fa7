package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nigel2392/dsa/src/binarytree"
	"github.com/urfave/cli/v2"
)

func (s *session) runShow(cctx *cli.Context) error {
	var out = cctx.App.Writer
	if s.tree.Root() == nil {
		fmt.Fprintln(out, "(empty tree)")
	} else {
		fmt.Fprint(out, s.tree.String())
	}
	fmt.Fprintf(out, "height: %d, nodes: %d\n", s.tree.Height(), s.tree.Len())
	return nil
}

func (s *session) runWalk(cctx *cli.Context) error {
	var iter *binarytree.Iterator[int]
	switch order := strings.ToLower(cctx.String("order")); order {
	case "pre":
		iter = s.tree.IterPreOrder()
	case "in":
		iter = s.tree.IterInOrder()
	case "post":
		iter = s.tree.IterPostOrder()
	default:
		return fmt.Errorf("unknown traversal order %q", order)
	}

	var values []string
	for v, ok := iter.Next(); ok; v, ok = iter.Next() {
		values = append(values, strconv.Itoa(v))
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(values, " "))
	return nil
}

func (s *session) runFind(cctx *cli.Context) error {
	var values, err = parseValues(cctx)
	if err != nil {
		return err
	}

	for _, v := range values {
		var state = "found"
		if !s.tree.QuickFind(v) {
			state = "not found"
		}
		fmt.Fprintf(cctx.App.Writer, "%d: %s\n", v, state)
	}
	return nil
}

func (s *session) runInsert(cctx *cli.Context) error {
	var values, err = parseValues(cctx)
	if err != nil {
		return err
	}

	for _, v := range values {
		s.tree.Insert(v)
		s.log.Infof("inserted %d, height is now %d", v, s.tree.Height())
	}
	return s.print(cctx)
}

func (s *session) runDelete(cctx *cli.Context) error {
	var values, err = parseValues(cctx)
	if err != nil {
		return err
	}

	for _, v := range values {
		if !s.tree.Delete(v) {
			s.log.Warningf("delete %d: %s", v, binarytree.ErrNotFound)
			continue
		}
		s.log.Infof("deleted %d, %d nodes left", v, s.tree.Len())
	}
	return s.print(cctx)
}

func (s *session) runCheck(cctx *cli.Context) error {
	var err = s.tree.Check()
	if err == nil {
		fmt.Fprintln(cctx.App.Writer, "ok")
		return nil
	}

	if binarytree.IsIntegrityError(err) {
		var errs interface{ Unwrap() []error }
		if errors.As(err, &errs) {
			for _, e := range errs.Unwrap() {
				s.log.Error(e)
			}
		}
	}
	return fmt.Errorf("check tree: %w", err)
}

// print writes the tree with the configured serializer.
func (s *session) print(cctx *cli.Context) error {
	var b, err = s.serializer.Serialize(s.tree)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	fmt.Fprintln(cctx.App.Writer, string(b))
	return nil
}

func parseValues(cctx *cli.Context) ([]int, error) {
	var args = cctx.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("at least one value is required")
	}

	var values = make([]int, 0, len(args))
	for _, arg := range args {
		var v, err = strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
