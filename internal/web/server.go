// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web serves an interactive incident chart over HTTP.
//
// Each page load creates a chart session. The page's country selector
// asks for the session's chart again with a new filter, so each
// viewer has its own chart state.
package web

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/aclements/go-incidents/chart"
	"github.com/aclements/go-incidents/dataset"
	"github.com/aclements/go-incidents/internal/svgscene"
)

// DefaultMaxSessions is the default limit on live chart sessions.
const DefaultMaxSessions = 1000

// Server serves charts of a fixed set of records.
type Server struct {
	// MaxSessions is the most sessions kept at once. When a new
	// session would exceed it, the least recently used session is
	// dropped.
	MaxSessions int

	records   []*dataset.Record
	countries []string
	layout    chart.Layout

	mu       sync.Mutex
	sessions map[uuid.UUID]*viewer

	// clock orders session uses for eviction.
	clock atomic.Int64
}

// viewer is the chart state of one page.
type viewer struct {
	sync.Mutex
	sess    *chart.Session
	scene   *svgscene.Scene
	lastUse int64
}

// NewServer returns a Server for records.
func NewServer(records []*dataset.Record, layout chart.Layout) *Server {
	return &Server{
		MaxSessions: DefaultMaxSessions,
		records:     records,
		countries:   dataset.Countries(records),
		layout:      layout,
		sessions:    make(map[uuid.UUID]*viewer),
	}
}

// Handler returns the HTTP handler for s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/chart.svg", s.serveChart)
	mux.HandleFunc("/counts.json", s.serveCounts)
	return mux
}

// Sessions returns the number of live sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) newViewer() *viewer {
	sess := chart.NewSession(s.records, s.layout)
	scene := svgscene.New(s.layout)
	scene.Interactive = true
	v := &viewer{sess: sess, scene: scene, lastUse: s.clock.Add(1)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MaxSessions > 0 && len(s.sessions) >= s.MaxSessions {
		s.evictLocked(len(s.sessions) - s.MaxSessions + 1)
	}
	s.sessions[sess.ID] = v
	return v
}

// evictLocked drops the n least recently used sessions.
func (s *Server) evictLocked(n int) {
	type entry struct {
		id uuid.UUID
		t  int64
	}
	entries := make([]entry, 0, len(s.sessions))
	for id, v := range s.sessions {
		v.Lock()
		entries = append(entries, entry{id, v.lastUse})
		v.Unlock()
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].t < entries[j].t })
	for i := 0; i < n && i < len(entries); i++ {
		delete(s.sessions, entries[i].id)
	}
}

func (s *Server) lookup(id string) *viewer {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[u]
}

// filterOf returns the filter selected by the "country" query
// parameter. A missing or empty parameter selects all countries.
func filterOf(r *http.Request) dataset.Filter {
	if c := r.URL.Query().Get("country"); c != "" {
		return dataset.ByCountry(c)
	}
	return dataset.All
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	v := s.newViewer()
	data := indexData{
		Session: v.sess.ID.String(),
		Script:  template.JS(svgscene.HoverScript),
	}
	for _, c := range s.countries {
		data.Countries = append(data.Countries, countryOption{c, dataset.CountryLabel(c)})
	}
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		log.Printf("executing index template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) serveChart(w http.ResponseWriter, r *http.Request) {
	v := s.lookup(r.URL.Query().Get("session"))
	if v == nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	v.Lock()
	v.lastUse = s.clock.Add(1)
	if f := filterOf(r); f != v.sess.Filter() || v.sess.Renders() == 0 {
		v.sess.Select(v.scene, f)
	}
	v.scene.Caption = "Aircraft incidents: " + v.sess.Filter().String()
	err := v.scene.WriteSVG(&buf)
	v.Unlock()
	if err != nil {
		log.Printf("writing chart: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sum := blake2b.Sum256(buf.Bytes())
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

type jsonCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

func (s *Server) serveCounts(w http.ResponseWriter, r *http.Request) {
	f := filterOf(r)
	counts := dataset.Aggregate(s.records, f)
	out := struct {
		Filter string      `json:"filter"`
		Counts []jsonCount `json:"counts"`
	}{f.String(), make([]jsonCount, len(counts))}
	for i, yc := range counts {
		out.Counts[i] = jsonCount{yc.Year, yc.Count}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("writing counts: %v", err)
	}
}
