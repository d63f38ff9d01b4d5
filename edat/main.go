// Command edat inspects EDAT data files.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/edat"
	"github.com/npillmayer/edat/edat/cli"
)

func main() {
	var stop context.CancelFunc
	edat.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	cli.Execute()
	stop()
	edat.Exit(0)
}
