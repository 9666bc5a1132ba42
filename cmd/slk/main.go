package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func main() {
	bin, err := exec.LookPath("slackline")
	if err != nil {
		fmt.Fprintln(os.Stderr, "slk: slackline not found on PATH")
		os.Exit(1)
	}
	if err := syscall.Exec(bin, append([]string{"slackline"}, os.Args[1:]...), os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "slk: %v\n", err)
		os.Exit(1)
	}
}
