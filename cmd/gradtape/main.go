// Package main provides the gradtape CLI: it runs numerical gradient checks
// against the engine's backward pass.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/born-ml/gradtape/internal/gradcheck"
)

const version = "v0.1.0-dev"

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
	if exitErr, ok := err.(cli.ExitCoder); ok {
		os.Exit(exitErr.ExitCode())
	}
	os.Exit(1)
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "gradtape"
	app.Usage = "Check reverse-mode gradients against finite differences"
	app.Version = version
	app.Writer = out
	app.UseShortOptionHandling = true
	// main decides the exit code.
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Commands = []cli.Command{
		{
			Name:  "version",
			Usage: "Show version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "gradtape %s\n", version)
				return nil
			},
		},
		{
			Name:  "cases",
			Usage: "List registered gradient check cases",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "plain", Usage: "Render pure text instead of table"},
			},
			Action: func(c *cli.Context) error {
				listCases(c.App.Writer, gradcheck.Registry(), c.Bool("plain"))
				return nil
			},
		},
		{
			Name:  "check",
			Usage: "Run gradient checks",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config,c", Usage: "YAML config file"},
				cli.StringSliceFlag{Name: "case", Usage: "Only run the named case (repeatable)"},
				cli.IntFlag{Name: "parallel,p", Usage: "Number of cases checked at once"},
				cli.BoolFlag{Name: "debug,d", Usage: "Log every case"},
				cli.BoolFlag{Name: "plain", Usage: "Render pure text instead of table"},
			},
			Action: runCheck,
		},
	}
	return app
}

func runCheck(c *cli.Context) error {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if c.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := gradcheck.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := gradcheck.LoadConfig(path)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		cfg = loaded
	}
	if c.IsSet("parallel") {
		cfg.Parallelism = c.Int("parallel")
	}
	if names := c.StringSlice("case"); len(names) > 0 {
		cfg.Cases = names
	}

	cases, err := gradcheck.Filter(gradcheck.Registry(), cfg.Cases)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	logrus.Debugf("Checking %d cases, parallelism %d", len(cases), cfg.Parallelism)

	results, err := gradcheck.Run(context.Background(), cfg, cases)
	if err != nil {
		if errors.Cause(err) == gradcheck.ErrInvalidConfig {
			return cli.NewExitError(err.Error(), 2)
		}
		return cli.NewExitError(errors.Wrap(err, "gradient check aborted").Error(), 3)
	}

	listResults(c.App.Writer, results, cfg.Tolerance, c.Bool("plain"))

	if failed := gradcheck.Failed(results); failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d cases failed", failed, len(results)), 1)
	}
	return nil
}

func listCases(w io.Writer, cases []gradcheck.Case, plain bool) {
	if plain {
		for _, c := range cases {
			fmt.Fprintf(w, "%s\t%v\n", c.Name, c.Shape)
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Case", "Shape", "Rank"})
	table.SetCaption(true, fmt.Sprintf("%d Cases", len(cases)))
	table.SetBorder(false)
	for _, c := range cases {
		table.Append([]string{c.Name, fmt.Sprint(c.Shape), strconv.Itoa(c.Shape.Rank())})
	}
	table.Render()
}

func listResults(w io.Writer, results []gradcheck.Result, tolerance float64, plain bool) {
	if plain {
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%d\t%.3g\t%s\n", r.Name, r.NumOps, r.MaxAbsErr, formatStatus(r))
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Case", "Shape", "Ops", "Max Abs Err", "Status"})
	table.SetCaption(true, fmt.Sprintf("%d/%d passed, tolerance %g",
		len(results)-gradcheck.Failed(results), len(results), tolerance))
	table.SetBorder(false)
	for _, r := range results {
		table.Append([]string{
			r.Name,
			fmt.Sprint(r.Shape),
			strconv.Itoa(r.NumOps),
			fmt.Sprintf("%.3g", r.MaxAbsErr),
			formatStatus(r),
		})
	}
	table.Render()
}

func formatStatus(r gradcheck.Result) string {
	if r.Passed {
		return "ok"
	}
	return "FAIL"
}
