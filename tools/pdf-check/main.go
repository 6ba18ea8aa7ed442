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

// Pdf-check verifies the structure of PDF files written by tinypdf.
//
// Every cross-reference entry, the stream lengths, the trailer and the
// startxref position are checked.  With -strict, the files are also
// validated using pdfcpu.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/localboost/tinypdf/inspect"
	"seehuhn.de/go/localboost/tools/internal/buildinfo"
)

func main() {
	strict := flag.Bool("strict", false, "also validate the files using pdfcpu")
	verbose := flag.Bool("v", false, "list the objects and cross-reference entries")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("pdf-check"))
		return
	}
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "error: no input files given")
		flag.Usage()
		os.Exit(1)
	}

	failed := false
	for _, fname := range flag.Args() {
		err := checkFile(fname, *strict, *verbose)
		if err != nil {
			fmt.Printf("%s: %v\n", fname, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok\n", fname)
	}
	if failed {
		os.Exit(1)
	}
}

func checkFile(fname string, strict, verbose bool) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	info, err := inspect.ScanBytes(data)
	if err != nil {
		return err
	}
	if verbose {
		printInfo(info)
	}
	err = info.Check(data)
	if err != nil {
		return err
	}

	if strict {
		api.DisableConfigDir()
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationStrict
		err = api.Validate(bytes.NewReader(data), conf)
		if err != nil {
			return fmt.Errorf("pdfcpu: %w", err)
		}
	}
	return nil
}

func printInfo(info *inspect.FileInfo) {
	fmt.Printf("  PDF-%s, %d bytes\n", info.HeaderVersion, info.Size)
	for _, obj := range info.Objects {
		desc := obj.Type
		if obj.StreamPos >= 0 {
			desc = fmt.Sprintf("stream, /Length %d", obj.Length)
		}
		fmt.Printf("  %d %d obj at %d: %s\n", obj.Number, obj.Generation, obj.Pos, desc)
	}
	fmt.Printf("  xref at %d, startxref %d\n", info.XRefPos, info.StartXRef)
	keys := maps.Keys(info.XRef)
	slices.Sort(keys)
	for _, num := range keys {
		e := info.XRef[num]
		kind := "f"
		if e.InUse {
			kind = "n"
		}
		fmt.Printf("    %d: %010d %05d %s\n", num, e.Offset, e.Generation, kind)
	}
	fmt.Printf("  trailer /Size %d /Root %d %d R\n",
		info.Trailer.Size, info.Trailer.Root, info.Trailer.RootGen)
}
