package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.RWMutex
	crashHook func()
	exitFunc  = os.Exit
)

// SetCrashHook registers cleanup run before the stack trace is printed
// The preview registers its tcell screen Fini here so the terminal is restored on panic
func SetCrashHook(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHook = fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.RLock()
	hook := crashHook
	crashMu.RUnlock()
	if hook != nil {
		hook()
	}

	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exitFunc(1)
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
