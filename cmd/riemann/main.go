// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/riemann/cmd/riemann/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
