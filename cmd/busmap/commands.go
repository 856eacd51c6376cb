package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/sync/errgroup"

	"emukit"
	"emukit/clock"
	"emukit/hwio"
	"emukit/log"
	"emukit/mapfile"
)

// Map files address at most 32 bits in this tool.
type busT = hwio.Bus[uint32, uint8]

func build(path string) (*busT, error) {
	f, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}
	log.ModCli.WithField("path", path).Debug("building bus from map file")
	return mapfile.Build[uint32](f)
}

type Dump struct {
	MapPath string `arg:"" name:"/path/to/map.toml" type:"existingfile"`
	JSON    bool   `help:"Output as JSON."`
}

func (d *Dump) Run() error {
	bus, err := build(d.MapPath)
	if err != nil {
		return err
	}

	if d.JSON {
		return mapfile.EncodeJSON(os.Stdout, bus)
	}

	fmt.Printf("%s (%d words)\n", bus.Name, bus.Len())
	for _, m := range bus.Mappings() {
		desc := ""
		if s, ok := m.Dev.(fmt.Stringer); ok {
			desc = s.String()
		}
		fmt.Printf("  %08X-%08X  %s\n", m.Start, m.End, desc)
	}
	return nil
}

type Peek struct {
	MapPath string `arg:"" name:"/path/to/map.toml" type:"existingfile"`
	Addr    string `arg:"" help:"Address to read (0x prefix accepted)."`
}

func (p *Peek) Run() error {
	bus, err := build(p.MapPath)
	if err != nil {
		return err
	}

	addr, err := strconv.ParseUint(p.Addr, 0, 32)
	if err != nil {
		return err
	}

	v, err := bus.TryRead(uint32(addr))
	if err != nil {
		return err
	}
	fmt.Printf("%08X: %02X\n", addr, v)
	return nil
}

type Poke struct {
	MapPath string `arg:"" name:"/path/to/map.toml" type:"existingfile"`
	Addr    string `arg:"" help:"Address to write (0x prefix accepted)."`
	Val     string `arg:"" help:"Value to write."`
}

func (p *Poke) Run() error {
	bus, err := build(p.MapPath)
	if err != nil {
		return err
	}

	addr, err := strconv.ParseUint(p.Addr, 0, 32)
	if err != nil {
		return err
	}
	val, err := strconv.ParseUint(p.Val, 0, 8)
	if err != nil {
		return err
	}

	if err := bus.TryWrite(uint32(addr), uint8(val)); err != nil {
		return err
	}
	v, err := bus.TryRead(uint32(addr))
	if err != nil {
		return err
	}
	fmt.Printf("%08X: %02X\n", addr, v)
	return nil
}

type Run struct {
	MapPath string `arg:"" name:"/path/to/map.toml" type:"existingfile"`
	Hz      uint   `default:"60" help:"Tick frequency."`
	Cycles  uint64 `default:"600" help:"Number of cycles to run."`
}

func (r *Run) Run() error {
	bus, err := build(r.MapPath)
	if err != nil {
		return err
	}

	log.ModCli.WithFields(log.Fields{
		"hz":     r.Hz,
		"cycles": r.Cycles,
	}).Debug("running memory map")

	clk := clock.New(r.Hz)
	defer clk.Stop()

	scan := newScanner(bus, r.Cycles)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		emukit.Run(scan, clk)
		stop()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		clk.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("ran %d cycles, checksum %02X\n", scan.done, scan.sum)
	return nil
}

// scanner is a trivial Machine walking the bus span one address per cycle,
// folding every mapped word into a running checksum.
type scanner struct {
	bus    *busT
	lo, hi uint32
	cur    uint32
	left   uint64
	done   uint64
	sum    uint8
}

func newScanner(bus *busT, cycles uint64) *scanner {
	s := &scanner{bus: bus, left: cycles}
	for i, m := range bus.Mappings() {
		if i == 0 || m.Start < s.lo {
			s.lo = m.Start
		}
		if m.End > s.hi {
			s.hi = m.End
		}
	}
	s.cur = s.lo
	return s
}

func (s *scanner) Enabled() bool {
	return s.left > 0 && s.bus.Len() > 0
}

func (s *scanner) Cycle() {
	if v, err := s.bus.TryRead(s.cur); err == nil {
		s.sum ^= v
	}
	if s.cur == s.hi {
		s.cur = s.lo
	} else {
		s.cur++
	}
	s.left--
	s.done++
}

func (s *scanner) Reset() {
	s.cur = s.lo
	s.sum = 0
}
