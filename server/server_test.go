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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/localboost/report"
	"seehuhn.de/go/localboost/scan"
	"seehuhn.de/go/localboost/tinypdf"
	"seehuhn.de/go/localboost/tinypdf/inspect"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	logBuf := &bytes.Buffer{}
	conf := DefaultConfig()
	conf.MaxBodyBytes = 4096
	s := New(conf, log.New(logBuf, "", 0))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, logBuf
}

func TestScanEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	req := scan.Request{
		Name:     "Texas Roadhouse",
		Website:  "https://www.texasroadhouse.com",
		City:     "Austin, TX",
		Category: "Restaurant",
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/api/scan", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("wrong content type %q", ct)
	}
	var got report.ScanResult
	err = json.NewDecoder(resp.Body).Decode(&got)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(scan.Run(req), &got); d != "" {
		t.Errorf("scan result (-want +got):\n%s", d)
	}
}

func TestScanEndpointErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/scan", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid JSON: expected 400, got %s", resp.Status)
	}

	big := `{"name": "` + strings.Repeat("x", 10000) + `"}`
	resp, err = http.Post(ts.URL+"/api/scan", "application/json", strings.NewReader(big))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("large body: expected 413, got %s", resp.Status)
	}

	resp, err = http.Get(ts.URL + "/api/scan")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET: expected 405, got %s", resp.Status)
	}
	if allow := resp.Header.Get("Allow"); !strings.Contains(allow, "POST") {
		t.Errorf("wrong Allow header %q", allow)
	}
}

func TestReportEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	res := scan.Run(scan.Request{Name: "A/B Co", Website: "https://ab.example"})
	body, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/api/report", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("wrong content type %q", ct)
	}
	cd := resp.Header.Get("Content-Disposition")
	if want := `attachment; filename="LocalBoost-Report-A/B_Co.pdf"`; cd != want {
		t.Errorf("wrong Content-Disposition %q", cd)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if want := tinypdf.Assemble(res.Report().Lines()); !bytes.Equal(data, want) {
		t.Error("unexpected PDF data")
	}
	if err := inspect.Check(data); err != nil {
		t.Error(err)
	}
}

func TestReportEndpointLenient(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/report", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	cd := resp.Header.Get("Content-Disposition")
	if want := "attachment; filename=LocalBoost-Report-LocalBoost_Client.pdf"; cd != want {
		t.Errorf("wrong Content-Disposition %q", cd)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("(Business: LocalBoost Client) Tj")) {
		t.Error("default business name missing from the report")
	}
}

func TestReportEndpointOverflow(t *testing.T) {
	ts, logBuf := newTestServer(t)

	var wins []string
	for i := 0; i < 60; i++ {
		wins = append(wins, "w")
	}
	body, err := json.Marshal(map[string]any{"monthly": map[string]any{"wins": wins}})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/api/report", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	if !strings.Contains(logBuf.String(), "only 48 fit on the page") {
		t.Errorf("missing overflow warning in log %q", logBuf.String())
	}
}

func TestIndex(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	if !bytes.Contains(page, []byte(`value="Texas Roadhouse"`)) {
		t.Error("form defaults missing")
	}
	if !bytes.Contains(page, []byte("No scan yet.")) {
		t.Error("empty result text missing")
	}

	form := url.Values{
		"name":     {"Bright Smile Dental"},
		"website":  {"http://brightsmile.example"},
		"city":     {"Austin, TX"},
		"category": {"Dentist"},
	}
	resp, err = http.PostForm(ts.URL+"/", form)
	if err != nil {
		t.Fatal(err)
	}
	page, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<h2>Bright Smile Dental</h2>",
		"50/100",
		"Needs Attention",
		"dentist near me",
		"Download PDF Report",
	} {
		if !bytes.Contains(page, []byte(want)) {
			t.Errorf("%q missing from page", want)
		}
	}
	if bytes.Contains(page, []byte("ZgotmplZ")) {
		t.Error("template produced unsafe content marker")
	}

	resp, err = http.Get(ts.URL + "/nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %s", resp.Status)
	}
}

func TestFormReport(t *testing.T) {
	ts, _ := newTestServer(t)

	form := url.Values{"name": {"Joe's Plumbing"}, "city": {"Austin, TX"}}
	resp, err := http.PostForm(ts.URL+"/report", form)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	cd := resp.Header.Get("Content-Disposition")
	if want := "attachment; filename=LocalBoost-Report-Joe's_Plumbing.pdf"; cd != want {
		t.Errorf("wrong Content-Disposition %q", cd)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	req := scan.DefaultRequest()
	req.Name = "Joe's Plumbing"
	req.City = "Austin, TX"
	if want := tinypdf.Assemble(scan.Run(req).Report().Lines()); !bytes.Equal(data, want) {
		t.Error("unexpected PDF data")
	}
}

func TestListenAndServe(t *testing.T) {
	conf := DefaultConfig()
	conf.Addr = "127.0.0.1:0"
	s := New(conf, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected error %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestFormEmptyFields(t *testing.T) {
	ts, _ := newTestServer(t)

	// An empty website is scored as it is, a missing one uses the default.
	cases := []struct {
		form  url.Values
		score string
	}{
		{url.Values{"name": {"Joe"}, "website": {""}}, "53/100"},
		{url.Values{"name": {"Joe"}}, "60/100"},
	}
	for _, test := range cases {
		resp, err := http.PostForm(ts.URL+"/", test.form)
		if err != nil {
			t.Fatal(err)
		}
		page, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(page, []byte(test.score)) {
			t.Errorf("%v: %q missing from page", test.form, test.score)
		}
	}
}
