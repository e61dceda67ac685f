/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"

	"github.com/adeleyeMV/golox/cli"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [script|rprompt]\n", os.Args[0])
		os.Exit(cli.ExitUsage)
	}

	d := cli.NewDriver()

	var code int
	if len(os.Args) == 2 && os.Args[1] != "rprompt" {
		code = d.RunFile(os.Args[1])
	} else {
		code = d.RunPrompt()
	}
	os.Exit(code)
}
