package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal; satisfied by tcell.Screen
type Finisher interface {
	Fini()
}

var crashScreen atomic.Pointer[Finisher]

// exit is swapped in tests
var exit = os.Exit

// SetCrashScreen registers the screen to restore before a crash report is printed
func SetCrashScreen(f Finisher) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&f)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashScreen.Load(); f != nil {
		(*f).Fini()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-ARENA CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

func recoverCrash() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer recoverCrash()
		fn()
	}()
}

// Guard wraps an errgroup task so a panic restores the terminal before the process exits
func Guard(fn func() error) func() error {
	return func() error {
		defer recoverCrash()
		return fn()
	}
}
