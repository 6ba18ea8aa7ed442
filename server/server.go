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

// Package server implements the LocalBoost web application: a form to
// scan a business, the on-screen report, and the PDF download.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"seehuhn.de/go/localboost/report"
	"seehuhn.de/go/localboost/scan"
	"seehuhn.de/go/localboost/tinypdf"
)

// Config holds the server settings.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the default server settings.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:8080",
		MaxBodyBytes: 1 << 20,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves the web application.  The zero value is not usable, use
// [New] to create a Server.
type Server struct {
	conf Config
	log  *log.Logger
}

// New creates a server with the given settings.  If logger is nil,
// messages are discarded.
func New(conf Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if conf.MaxBodyBytes <= 0 {
		conf.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}
	return &Server{conf: conf, log: logger}
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleIndex)
	mux.HandleFunc("POST /report", s.handleFormReport)
	mux.HandleFunc("POST /api/scan", s.handleScan)
	mux.HandleFunc("POST /api/report", s.handleReport)
	return mux
}

// ListenAndServe serves HTTP requests until ctx is cancelled.  Requests in
// progress are given five seconds to complete.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.conf.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.conf.ReadTimeout,
		WriteTimeout: s.conf.WriteTimeout,
		ErrorLog:     s.log,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Printf("listening on %s", s.conf.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleScan runs a scan for the business given as JSON in the request
// body.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes)

	var req scan.Request
	err := json.NewDecoder(body).Decode(&req)
	if err != nil {
		s.requestError(w, err)
		return
	}

	res := scan.Run(req)
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		s.log.Printf("scan: %v", err)
	}
}

// handleReport returns the PDF report for the scan result given as JSON in
// the request body.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes)

	rep, err := report.Decode(body)
	if err != nil {
		s.requestError(w, err)
		return
	}
	s.sendPDF(w, rep)
}

// handleFormReport returns the PDF report for the business given in a
// submitted form.  The scan is repeated, which gives the same result as
// the scan shown on the page.
func (s *Server) handleFormReport(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseForm(w, r)
	if err != nil {
		s.requestError(w, err)
		return
	}
	s.sendPDF(w, scan.Run(req).Report())
}

func (s *Server) sendPDF(w http.ResponseWriter, rep *report.Report) {
	lines := rep.Lines()
	if n := tinypdf.Capacity(); len(lines) > n {
		s.log.Printf("report for %q has %d lines, only %d fit on the page",
			rep.Business.Name, len(lines), n)
	}
	data := tinypdf.Assemble(lines)

	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", report.ContentDisposition(rep.Business.Name))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	_, err := w.Write(data)
	if err != nil {
		s.log.Printf("report: %v", err)
	}
}

// pageData is the data for the page template.
type pageData struct {
	Req    scan.Request
	Result *report.ScanResult
	Band   scan.Band
	Error  string

	// BandStyle is the inline CSS for the score badge.
	BandStyle template.CSS
}

// handleIndex shows the scan form and, for submitted forms, the result of
// the scan.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := &pageData{
		Req: scan.Request{
			Name:     "Texas Roadhouse",
			Website:  "https://www.texasroadhouse.com",
			City:     "Austin, TX",
			Category: "Restaurant",
		},
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		req, err := s.parseForm(w, r)
		if err != nil {
			status = errorStatus(err)
			data.Error = err.Error()
		} else {
			data.Req = req
			data.Result = scan.Run(req)
			data.Band = scan.ScoreBand(data.Result.Summary.Score)
			data.BandStyle = template.CSS("color: " + data.Band.Color + "; background: " + data.Band.Bg)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := pageTmpl.Execute(w, data)
	if err != nil {
		s.log.Printf("page: %v", err)
	}
}

func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) (scan.Request, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes)
	err := r.ParseForm()
	if err != nil {
		return scan.Request{}, err
	}

	// Missing fields get their default values, empty fields are kept.
	req := scan.DefaultRequest()
	fields := []struct {
		key string
		val *string
	}{
		{"name", &req.Name},
		{"website", &req.Website},
		{"city", &req.City},
		{"category", &req.Category},
	}
	for _, f := range fields {
		if v, ok := r.PostForm[f.key]; ok && len(v) > 0 {
			*f.val = v[0]
		}
	}
	return req, nil
}

// requestError reports a problem with the request body to the client.
func (s *Server) requestError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	s.log.Printf("bad request: %v", err)
	http.Error(w, http.StatusText(status)+": "+err.Error(), status)
}

func errorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
