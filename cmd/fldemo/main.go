// Command fldemo replays list scenarios and inspects persisted snapshots.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
