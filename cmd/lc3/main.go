// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/lc3/device"
	"github.com/ezrec/lc3/emulator"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [-v] image-file ...\n", os.Args[0])
		os.Exit(1)
	}

	emu := emulator.New()
	emu.Verbose = verbose

	for _, path := range flag.Args() {
		err := emu.LoadImageFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
			os.Exit(1)
		}
	}

	display := bufio.NewWriter(os.Stdout)
	emu.SetDisplay(display)
	emu.SetKeyboard(device.NewConsole(os.Stdin))

	term := device.NewTerminal(os.Stdin)
	err := term.Raw()
	if err != nil && verbose {
		// Not a TTY; keystrokes arrive line buffered.
		log.Printf("raw mode: %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		term.Restore()
		os.Exit(-2)
	}()

	emu.Reset()
	err = emu.Run()

	display.Flush()
	term.Restore()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
