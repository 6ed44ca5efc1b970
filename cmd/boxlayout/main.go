// SPDX-License-Identifier: Unlicense OR MIT

// Command boxlayout solves a layout described by a format string and
// prints the rectangle of every widget.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "boxlayout: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "boxlayout",
		Short:         "Solve box layouts from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	root.PersistentFlags().AddGoFlagSet(fs)
	root.AddCommand(newSolveCmd())
	return root
}
