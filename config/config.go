/*
 * Lox
 *
 * Copyright 2026 The golox Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package config carries the small set of constants the CLI and REPL
// need: product metadata, the prompt string, accepted source file
// extensions, and the default trace log level.
package config

/*
ProductVersion is the current version of golox.
*/
const ProductVersion = "0.1.0"

/*
Prompt is printed (with no trailing newline) before each REPL line read.
*/
const Prompt = "> "

/*
DefaultLogLevel is the level the driver's internal trace logger runs at.
There is no CLI flag to override it.
*/
const DefaultLogLevel = "Info"

/*
SourceExtensions lists the file extensions the CLI accepts as Lox source
(spec §6: "must have the extension .lox or .pylox").
*/
var SourceExtensions = []string{".lox", ".pylox"}

/*
HasSourceExtension reports whether ext (as returned by filepath.Ext,
including the leading dot) is one of SourceExtensions.
*/
func HasSourceExtension(ext string) bool {
	for _, e := range SourceExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
