package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Nigel2392/dsa/src/binarytree"
	"github.com/Nigel2392/dsa/src/logger"
	"github.com/Nigel2392/dsa/src/serializer"
	"github.com/urfave/cli/v2"
)

// State shared by all commands, filled in before a command runs.
type session struct {
	log        logger.Logger
	serializer serializer.Serializer
	tree       *binarytree.Tree[int]
	logfile    io.Closer
}

func main() {
	var app = newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%sbstree: %s%s\n", logger.Red, err, logger.Reset)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	var s = &session{}

	var app = &cli.App{
		Name:      "bstree",
		Usage:     "inspect and modify a binary search tree of integers",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "JSON file holding the tree, \"-\" reads stdin, empty starts with an empty tree",
				EnvVars: []string{"BSTREE_TREE"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format of modified trees (\"json\", \"pretty\")",
				Value:   "json",
				EnvVars: []string{"BSTREE_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "loglevel",
				Usage:   "the log level to use (\"CRITICAL\", \"ERROR\", \"WARNING\", \"INFO\", \"DEBUG\", \"TEST\")",
				Value:   "INFO",
				EnvVars: []string{"BSTREE_LOGLEVEL"},
			},
			&cli.StringFlag{
				Name:    "logfile",
				Usage:   "the logfile to write to (none for stderr)",
				EnvVars: []string{"BSTREE_LOGFILE"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored log output",
			},
		},
		Before: s.setup,
		After:  s.teardown,
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "print the tree, its height and size",
				Action: s.runShow,
			},
			{
				Name:  "walk",
				Usage: "print the values of a depth first traversal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "order",
						Aliases: []string{"o"},
						Usage:   "traversal order (\"pre\", \"in\", \"post\")",
						Value:   "in",
					},
				},
				Action: s.runWalk,
			},
			{
				Name:      "find",
				Usage:     "report whether values are present",
				ArgsUsage: "VALUE...",
				Action:    s.runFind,
			},
			{
				Name:      "insert",
				Usage:     "insert values and print the resulting tree",
				ArgsUsage: "VALUE...",
				Action:    s.runInsert,
			},
			{
				Name:      "delete",
				Usage:     "delete values and print the resulting tree",
				ArgsUsage: "VALUE...",
				Action:    s.runDelete,
			},
			{
				Name:   "check",
				Usage:  "verify heights, parent links and ordering of the tree",
				Action: s.runCheck,
			},
		},
	}

	return app
}

func (s *session) setup(cctx *cli.Context) error {
	var w = cctx.App.ErrWriter
	if path := cctx.String("logfile"); path != "" {
		var f, err = logger.NewLogFile(path)
		if err != nil {
			return fmt.Errorf("open logfile: %w", err)
		}
		s.logfile = f
		w = f
	}

	var level = logger.LoglevelFromString(cctx.String("loglevel"))
	if cctx.Bool("no-color") || cctx.String("logfile") != "" {
		s.log = logger.NewPlainLogger(level, w)
	} else {
		s.log = logger.Newlogger(level, w)
	}

	var ok bool
	if s.serializer, ok = serializer.FromString(cctx.String("format")); !ok {
		return fmt.Errorf("unknown format %q", cctx.String("format"))
	}

	var tree, err = s.load(cctx)
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}

func (s *session) teardown(cctx *cli.Context) error {
	if s.logfile == nil {
		return nil
	}
	return s.logfile.Close()
}

// load reads the tree named by the tree flag.
func (s *session) load(cctx *cli.Context) (*binarytree.Tree[int], error) {
	var path = cctx.String("tree")
	var tree = &binarytree.Tree[int]{}
	if path == "" {
		s.log.Debug("starting with an empty tree")
		return tree, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cctx.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}

	if err = s.serializer.Deserialize(tree, data); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	s.log.Debugf("loaded tree of %d nodes from %s", tree.Len(), path)
	return tree, nil
}
