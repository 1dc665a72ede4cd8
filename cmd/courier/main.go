// Command courier builds an HTTP response from flags or a YAML fixture and writes it to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/shravanasati/courier/internal/fixture"
	"github.com/shravanasati/courier/internal/logging"
	"github.com/shravanasati/courier/message"
	"github.com/shravanasati/courier/response"
	"github.com/shravanasati/courier/status"
)

// headerList collects repeated -header flags.
type headerList []string

func (h *headerList) String() string {
	return strings.Join(*h, ", ")
}

func (h *headerList) Set(v string) error {
	*h = append(*h, v)
	return nil
}

type options struct {
	fixture  string
	status   int
	text     string
	charset  string
	file     string
	stdin    bool
	length   int64
	headers  headerList
	describe bool
	logLevel string
	logFile  string

	// set records which flags were given explicitly
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("courier", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.fixture, "fixture", "", "YAML fixture describing the response")
	fs.IntVar(&opts.status, "status", int(status.OK), "status code")
	fs.StringVar(&opts.text, "text", "", "text body")
	fs.StringVar(&opts.charset, "charset", "", "charset used to encode -text")
	fs.StringVar(&opts.file, "file", "", "file body")
	fs.BoolVar(&opts.stdin, "stdin", false, "stream the body from standard input")
	fs.Int64Var(&opts.length, "length", -1, "length of the -stdin body, -1 for unknown")
	fs.Var(&opts.headers, "header", "header line such as \"Content-Type: text/plain\", repeatable")
	fs.BoolVar(&opts.describe, "describe", false, "print a summary table instead of the response")
	fs.StringVar(&opts.logLevel, "log-level", logging.DefaultLevel("info"), "log level, overridden by $"+logging.EnvLevel)
	fs.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// load returns the fixture named by -fixture, or one assembled from the other flags.
func (o *options) load() (*fixture.Fixture, error) {
	if o.fixture != "" {
		return fixture.Load(o.fixture)
	}

	f := &fixture.Fixture{
		Version: message.DefaultVersion,
		Status:  o.status,
		Headers: o.headers,
		Body: fixture.Body{
			Charset: o.charset,
			File:    o.file,
			Stdin:   o.stdin,
		},
	}
	if o.set["text"] {
		f.Body.Text = &o.text
	}
	if o.set["length"] {
		f.Body.Length = &o.length
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func describe(w io.Writer, resp *response.Response, kind string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})

	rows := [][]string{
		{"status", resp.Code().String()},
		{"class", resp.Code().Class().String()},
		{"version", resp.Version()},
	}
	for name, value := range resp.Headers().All() {
		rows = append(rows, []string{"header " + name, value})
	}
	rows = append(rows,
		[]string{"body", kind},
		[]string{"length", resp.Length().String()},
	)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logging.New(logging.Config{
		Level:      opts.logLevel,
		File:       opts.logFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}, stderr)
	defer log.Close()

	start := time.Now()
	f, err := opts.load()
	if err != nil {
		log.WithError(err).Error("invalid response description")
		return 1
	}

	resp, err := f.Build(stdin)
	if err != nil {
		log.WithError(err).Error("build response")
		return 1
	}
	log.WithField("body", f.Body.Kind()).Debug("response built")

	if opts.describe {
		if body, _ := resp.TakeBody(); body != nil {
			body.Close()
		}
		err = describe(stdout, resp, f.Body.Kind())
	} else {
		err = resp.Write(stdout)
	}
	if err != nil {
		log.WithError(err).Error("write response")
		return 1
	}

	logging.LogResponse(log, resp, time.Since(start))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
