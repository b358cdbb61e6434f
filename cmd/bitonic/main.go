// Command bitonic sorts sequences whose length is a power of two with a
// bitonic sorting network, and prints the network itself.
//
//	bitonic sort --type int 5 3 8 1
//	bitonic sort --strategy parallel --input values.txt
//	bitonic network --size 8
//	bitonic demo
//
// Every flag can also be set through a BITONIC_ environment variable, for
// example BITONIC_STRATEGY=parallel, or in the file named by --config.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
