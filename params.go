package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/litest/litest-go/litest"
)

type commandParams struct {
	format    string
	level     int
	outPath   string
	testNums  indexList
	throwMode bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.format, "format", "console", "output format: console, markdown, or html")
	fs.IntVar(&c.level, "level", 2, "verbosity: 1=errors only, 2=+messages, 3=+passes")
	fs.StringVar(&c.outPath, "out", "", "write the report to a file instead of stdout")
	fs.Var(&c.testNums, "run", "comma-separated test number(s) to run (1-based); default all")
	fs.BoolVar(&c.throwMode, "throw", false, "stop the whole run at the first failure")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.level < int(litest.LevelErrors) || c.level > int(litest.LevelEverything) {
		fmt.Fprintln(os.Stderr, "-level must be 1, 2, or 3")
		return false
	}
	return true
}

func (c *commandParams) formatterFactory() (litest.FormatterFactory, error) {
	level := litest.LogLevel(c.level)
	switch c.format {
	case "console":
		return litest.ConsoleFormatterAt(level), nil
	case "markdown":
		return litest.MarkdownFormatterAt(level), nil
	case "html":
		return litest.NewHTMLFormatter, nil
	}
	return nil, fmt.Errorf("unknown format %q", c.format)
}

// indexList is a flag.Value accepting comma-separated 1-based test numbers,
// stored as zero-based suite indices.
type indexList struct {
	indices []int
}

func (l *indexList) String() string {
	var ss []string
	for _, i := range l.indices {
		ss = append(ss, strconv.Itoa(i+1))
	}
	return strings.Join(ss, ",")
}

// Set is called by the command line parser
func (l *indexList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid test number %q", part)
		}
		l.indices = append(l.indices, n-1)
	}
	return nil
}

func (l *indexList) IsDefined() bool {
	return len(l.indices) > 0
}
