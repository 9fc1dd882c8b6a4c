// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/byteshow"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "byteshow",
		Short: "byteshow prints the bytes of 0x12345678 and marks the LSB and MSB for this host.",
		// positional arguments are ignored
		Args:          cobra.ArbitraryArgs,
		RunE:          runShow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func runShow(cmd *cobra.Command, _ []string) error {
	if _, err := byteshow.Write(cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("byteshow error: %s", err)
	}
}
