// Package tassert provides common asserts for tests
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tassert

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

const module = "recsort"

var (
	fatalities = make(map[string]struct{})
	mu         sync.Mutex
)

func CheckFatal(tb testing.TB, err error) {
	if err == nil {
		return
	}
	mu.Lock()
	if _, ok := fatalities[tb.Name()]; ok {
		mu.Unlock()
		tb.Logf("--- %s: duplicate CheckFatal: %v", tb.Name(), err)
		runtime.Goexit()
	} else {
		fatalities[tb.Name()] = struct{}{}
		mu.Unlock()
		printStack()
		tb.Fatal(now(), err)
	}
}

func CheckError(tb testing.TB, err error) {
	if err != nil {
		printStack()
		tb.Error(now(), err)
	}
}

// Fails unless err is non-nil and satisfies `is` (e.g. keysort.IsErrPrecondition).
func CheckErrorIs(tb testing.TB, err error, is func(error) bool, what string) {
	switch {
	case err == nil:
		printStack()
		tb.Errorf("expected %s, got nil", what)
	case !is(err):
		printStack()
		tb.Errorf("expected %s, got %v", what, err)
	}
}

func Fatalf(tb testing.TB, cond bool, format string, args ...any) {
	if !cond {
		printStack()
		tb.Fatalf(format, args...)
	}
}

func Errorf(tb testing.TB, cond bool, format string, args ...any) {
	if !cond {
		printStack()
		tb.Errorf(format, args...)
	}
}

func now() string { return fmt.Sprintf("[%s]", time.Now().Format("15:04:05.000000")) }

func printStack() {
	var buffer bytes.Buffer
	fmt.Fprintln(os.Stderr, "    tassert.printStack:")
	for i := 1; i < 9; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		i := strings.Index(file, module)
		if i < 0 {
			break
		}
		if strings.Contains(file, "tassert") {
			continue
		}
		fmt.Fprintf(&buffer, "\t%s:%d\n", file[i+len(module)+1:], line)
	}
	os.Stderr.Write(buffer.Bytes())
}
