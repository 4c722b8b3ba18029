// Command dsmcheck validates submission documents against the record schemas.
//
// Usage:
//
//	dsmcheck -kind brief [-format json|yaml] [-env-file .env] [file ...]
//
// Each file (or stdin when none is given, or "-") is decoded and validated.
// One JSON result line per input is written to stdout; a structured log line
// per input goes to stderr.
//
// Exit status is 0 when every input is valid, 1 when any input has field
// errors and 2 when a request is invalid (bad flags, unknown kind, unreadable
// or non-object input).
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
