// Command dorisgo inspects and compares DORIS RINEX observation files.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/de-bkg/dorisgo/pkg/doris"
	"github.com/urfave/cli/v2"
)

func openAny(path string) (*doris.DORIS, error) {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		return doris.ParseGzipFile(path)
	}
	return doris.ParseFile(path)
}

func main() {
	app := &cli.App{
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		HelpName:  "dorisgo",
		Usage:     "DORIS RINEX observation file toolkit",
		ArgsUsage: "[args and such]",
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Print a header summary of a DORIS file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						cli.ShowCommandHelpAndExit(c, "info", 1)
					}
					d, err := openAny(c.Args().Get(0))
					if err != nil {
						return err
					}
					h := d.Header
					fmt.Fprintf(c.App.Writer, "satellite:     %s\n", h.Satellite)
					fmt.Fprintf(c.App.Writer, "version:       %s\n", h.Version.String())
					fmt.Fprintf(c.App.Writer, "stations:      %d\n", len(h.GroundStations))
					fmt.Fprintf(c.App.Writer, "observables:   %d\n", len(h.Observables))
					fmt.Fprintf(c.App.Writer, "L1/L2 offset:  %s\n", h.L1L2DateOffset)
					if h.TimeOfFirstObservation != nil {
						fmt.Fprintf(c.App.Writer, "first obs:     %s\n", doris.FormatEpochRecordForm(*h.TimeOfFirstObservation))
					}
					if h.TimeOfLastObservation != nil {
						fmt.Fprintf(c.App.Writer, "last obs:      %s\n", doris.FormatEpochRecordForm(*h.TimeOfLastObservation))
					}
					if period, err := d.DominantSamplingPeriod(); err == nil {
						fmt.Fprintf(c.App.Writer, "sampling:      %s\n", period)
					}
					fmt.Fprintf(c.App.Writer, "merged:        %t\n", d.IsMerged())
					fmt.Fprintf(c.App.Writer, "standard name: %s\n", d.StandardFilename())
					return nil
				},
			},
			{
				Name:      "stations",
				Usage:     "List the ground station roster of a DORIS file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						cli.ShowCommandHelpAndExit(c, "stations", 1)
					}
					d, err := openAny(c.Args().Get(0))
					if err != nil {
						return err
					}
					for _, s := range d.Header.GroundStations {
						fmt.Fprintln(c.App.Writer, s.Verbose())
					}
					return nil
				},
			},
			{
				Name:      "diff",
				Usage:     "Structurally compare the records of two DORIS files",
				ArgsUsage: "<file1> <file2>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						fmt.Fprintf(c.App.Writer, "ERROR: diff needs two files to compare\n\n")
						cli.ShowCommandHelpAndExit(c, "diff", 1)
					}
					d1, err := openAny(c.Args().Get(0))
					if err != nil {
						return err
					}
					d2, err := openAny(c.Args().Get(1))
					if err != nil {
						return err
					}
					return d1.Diff(d2, c.App.Writer)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
