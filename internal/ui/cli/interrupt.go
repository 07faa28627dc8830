package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// SafeInterrupt captures SIGINT (Ctrl+C) and SIGTERM and calls onInterrupt. If the program
// hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Infof("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		ResetTerminal()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// ResetTerminal makes the cursor visible and restores default terminal colors.
func ResetTerminal() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// HideCursor hides the terminal cursor while an animation is running. Pair it with
// ResetTerminal.
func HideCursor() {
	fmt.Print("\033[?25l")
}
