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

// Localboost-server runs the LocalBoost web application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"seehuhn.de/go/localboost/server"
	"seehuhn.de/go/localboost/tools/internal/buildinfo"
)

func main() {
	conf := server.DefaultConfig()
	flag.StringVar(&conf.Addr, "addr", conf.Addr, "address to listen on")
	flag.Int64Var(&conf.MaxBodyBytes, "max-body", conf.MaxBodyBytes, "maximum request body size in bytes")
	flag.DurationVar(&conf.ReadTimeout, "read-timeout", conf.ReadTimeout, "maximum duration for reading a request")
	flag.DurationVar(&conf.WriteTimeout, "write-timeout", conf.WriteTimeout, "maximum duration for writing a response")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("localboost-server"))
		return
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "error: unexpected arguments", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	err := run(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(conf server.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "localboost: ", log.LstdFlags)
	logger.Println(buildinfo.Short("localboost-server"))

	s := server.New(conf, logger)
	err := s.ListenAndServe(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}
