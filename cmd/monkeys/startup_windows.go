//go:build windows

package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/monkeys-engine/monkeys/internal/util"
)

func init() {
	if util.IsRunFromGUI() && len(os.Args) < 2 {
		fmt.Println("monkeys is a command line tool. Run it from a terminal, for example:")
		fmt.Println("  monkeys generate components hpp components.toml include/")
		// keep the throwaway console open long enough to read the hint
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Print("Press Enter to exit...")
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		}
		os.Exit(0)
	}
}
