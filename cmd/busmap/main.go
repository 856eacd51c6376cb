// Command busmap is a workbench for emukit memory maps: it builds the bus
// described by a TOML map file and lets you inspect, probe, or exercise it.
package main

import "os"

func main() {
	ctx := parse(os.Args[1:])
	checkf(ctx.Run(), "%s failed", ctx.Command())
}
