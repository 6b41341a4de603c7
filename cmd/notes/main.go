// Command notes runs the meeting notes pipeline offline: validation, prompt
// composition, reply parsing and follow-up drafting on local files.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
