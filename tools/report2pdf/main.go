// seehuhn.de/go/localboost - scan reports for local businesses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Report2pdf converts a LocalBoost scan result into a PDF report.
//
// The input is read from the named file, or from standard input if no file
// is given.  By default the input is a scan result, as returned by the
// /api/scan endpoint.  With -scan, the input is a scan request
// ({"name": ..., "website": ..., "city": ..., "category": ...}) and the
// scan is run first.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/localboost/report"
	"seehuhn.de/go/localboost/scan"
	"seehuhn.de/go/localboost/tinypdf"
	"seehuhn.de/go/localboost/tools/internal/buildinfo"
	"seehuhn.de/go/localboost/tools/internal/profile"
)

func main() {
	out := flag.String("o", "", "output file name, or \"-\" for standard output\n(default: derived from the business name)")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	runScan := flag.Bool("scan", false, "read a scan request and run the scan")
	cpuprofile := flag.String("cpuprofile", "", "write CPU profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("report2pdf"))
		return
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: too many arguments")
		flag.Usage()
		os.Exit(1)
	}

	opt := &options{
		in:         flag.Arg(0),
		out:        *out,
		force:      *force,
		runScan:    *runScan,
		cpuprofile: *cpuprofile,
		memprofile: *memprofile,
	}
	err := run(opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type options struct {
	in, out    string
	force      bool
	runScan    bool
	cpuprofile string
	memprofile string
}

func run(opt *options) (err error) {
	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if e := stop(); err == nil {
			err = e
		}
	}()

	var in io.Reader = os.Stdin
	if opt.in != "" && opt.in != "-" {
		fd, err := os.Open(opt.in)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	rep, err := readReport(in, opt.runScan)
	if err != nil {
		return err
	}

	lines := rep.Lines()
	if n := tinypdf.Capacity(); len(lines) > n {
		fmt.Fprintf(os.Stderr, "warning: %d lines, only %d fit on the page\n", len(lines), n)
	}

	outName := opt.out
	if outName == "" {
		outName = report.Filename(rep.Business.Name)
	}
	if outName == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write PDF data to a terminal")
		}
		_, err = tinypdf.Write(os.Stdout, lines)
		return err
	}
	return writeFile(outName, lines, opt.force)
}

// readReport reads either a scan result, or a scan request for which the
// scan is run.
func readReport(r io.Reader, runScan bool) (*report.Report, error) {
	if !runScan {
		return report.Decode(r)
	}
	var req scan.Request
	err := json.NewDecoder(r).Decode(&req)
	if err != nil {
		return nil, fmt.Errorf("invalid scan request: %w", err)
	}
	return scan.Run(req).Report(), nil
}

func writeFile(fname string, lines []string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	fd, err := os.OpenFile(fname, flags, 0o644)
	if os.IsExist(err) {
		return fmt.Errorf("output file %q already exists", fname)
	} else if err != nil {
		return err
	}
	_, err = tinypdf.Write(fd, lines)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
