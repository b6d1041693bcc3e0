package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHook atomic.Pointer[func()]

// SetCrashHook registers a cleanup run before the stack trace is printed
// The terminal host uses it to restore the screen
func SetCrashHook(fn func()) {
	if fn == nil {
		crashHook.Store(nil)
		return
	}
	crashHook.Store(&fn)
}

// HandleCrash is the unified panic handler that runs the crash hook and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := crashHook.Load(); hook != nil {
		(*hook)()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
