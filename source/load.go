// SPDX-License-Identifier: MIT
// Package: citegraph/source
//
// load.go - obtaining an edge list from a file or over HTTP.

package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/katalvlaran/citegraph/digraph"
)

// CitationURL is the published high-energy physics citation graph
// (27,770 papers) that generated graphs are compared against.
const CitationURL = "http://storage.googleapis.com/codeskulptor-alg/alg_phys-cite.txt"

// ErrFetchStatus indicates the server answered with a non-2xx status.
var ErrFetchStatus = errors.New("source: unexpected HTTP status")

// LoadFile parses the edge list stored at path.
func LoadFile(path string) (*digraph.Graph, ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	g, st, err := ParseWithStats(f)
	if err != nil {
		return nil, st, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return g, st, nil
}

// Fetch downloads and parses the edge list at url. A nil client means
// http.DefaultClient.
//
// Errors: ErrFetchStatus, transport errors, parse errors.
func Fetch(ctx context.Context, client *http.Client, url string) (*digraph.Graph, ParseStats, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("Fetch: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ParseStats{}, fmt.Errorf("Fetch(%s): %s: %w", url, resp.Status, ErrFetchStatus)
	}

	g, st, err := ParseWithStats(resp.Body)
	if err != nil {
		return nil, st, fmt.Errorf("Fetch(%s): %w", url, err)
	}

	return g, st, nil
}

// Open dispatches on location: http(s) URLs go through Fetch, anything else
// is treated as a file path.
func Open(ctx context.Context, client *http.Client, location string) (*digraph.Graph, ParseStats, error) {
	if IsURL(location) {
		return Fetch(ctx, client, location)
	}

	return LoadFile(location)
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
