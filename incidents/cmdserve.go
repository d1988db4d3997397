// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-incidents/internal/web"
)

var cmdServeFlags = flag.NewFlagSet(os.Args[0]+" serve", flag.ExitOnError)

var serve struct {
	addr     string
	browser  string
	layout   string
	sessions int
	verbose  bool
}

func init() {
	f := cmdServeFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [flags] [inputs...]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&serve.addr, "addr", "localhost:8080", "listen on `address`")
	f.StringVar(&serve.browser, "browser", "", "open the chart with `command`, which is passed the URL as its last argument")
	f.StringVar(&serve.layout, "layout", "", "read chart size and margins from YAML `file`")
	f.IntVar(&serve.sessions, "sessions", web.DefaultMaxSessions, "keep at most `n` chart sessions")
	f.BoolVar(&serve.verbose, "v", false, "log the aggregated counts of each new session")
	registerSubcommand("serve", "[flags] [inputs...] - serve an interactive chart", cmdServe, f)
}

func cmdServe() {
	setVerbose(serve.verbose)
	records := loadRecords(cmdServeFlags.Args())
	srv := web.NewServer(records, loadLayout(serve.layout))
	srv.MaxSessions = serve.sessions

	ln, err := net.Listen("tcp", serve.addr)
	if err != nil {
		log.Fatal(err)
	}
	url := "http://" + ln.Addr().String() + "/"
	log.Printf("serving %d records at %s", len(records), url)

	if serve.browser != "" {
		cmd, err := browserCommand(serve.browser, url)
		if err != nil {
			log.Fatal(err)
		}
		if err := cmd.Start(); err != nil {
			log.Fatal(err)
		}
		go cmd.Wait()
	}

	hs := &http.Server{Handler: srv.Handler()}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hs.Shutdown(sctx)
	}()
	if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// browserCommand returns the command that opens url using command,
// which is split into words following shell quoting rules.
func browserCommand(command, url string) (*exec.Cmd, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parsing -browser: %w", err)
	}
	if len(args) == 0 {
		return nil, errors.New("empty -browser command")
	}
	args = append(args, url)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	return cmd, nil
}
