// SPDX-License-Identifier: MIT
// Package: citegraph/cmd/citegraph
//
// Command citegraph generates random directed graphs (DPA, Erdős–Rényi,
// complete), loads citation graphs, and compares their in-degree
// distributions on log-log plots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
