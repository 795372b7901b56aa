package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-tinybloom/bloom"
	"github.com/urfave/cli/v2"
)

var ErrElementRange = errors.New("tinybloom: element must be in 0..255")

const serviceName = "tinybloom"

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:   serviceName,
		Usage:  "adds and queries uint8 elements in a three hash bloom set",
		Writer: w,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: bloom.DefaultSize,
				Usage: "number of flags in the set",
			},
			&cli.IntSliceFlag{
				Name:  "add",
				Usage: "element to add, may be repeated",
			},
			&cli.IntSliceFlag{
				Name:  "query",
				Usage: "element to query after all adds, may be repeated",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "print the flags",
			},
			&cli.BoolFlag{
				Name:  "formulas",
				Usage: "print the hash formulas",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "INFO",
				EnvVars: []string{"TINYBLOOM_LOG_LEVEL"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger.New(c.String("log-level"))
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName(serviceName)

	adds, err := elements(c.IntSlice("add"))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	queries, err := elements(c.IntSlice("query"))
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	s, err := bloom.WithSize(c.Int("size"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	if c.Bool("formulas") {
		fmt.Fprintln(w, bloom.Formulas())
	}

	for _, x := range adds {
		s.Add(x)
		log.Debugf("add %d: indices %v", x, s.Indices(x))
	}
	for _, x := range queries {
		ok := s.Query(x)
		log.Debugf("query %d: indices %v", x, s.Indices(x))
		fmt.Fprintf(w, "query %d: %t\n", x, ok)
	}

	log.Infof("size %d (%d bytes), inserted %d, set %d",
		s.Len(), bloom.FlagBytes(uint64(s.Len())), s.Inserted(), s.Count())

	if c.Bool("show") {
		fmt.Fprintln(w, s)
	}
	return nil
}

func elements(values []int) ([]uint8, error) {
	out := make([]uint8, 0, len(values))
	for _, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: got %d", ErrElementRange, v)
		}
		out = append(out, uint8(v))
	}
	return out, nil
}
