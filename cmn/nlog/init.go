// Package nlog - recsort logger, provides buffering, timestamping, writing, and
// flushing/rotating
/*
 * Copyright (c) 2023-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	host    = "unknown"
	sevText = []string{sevInfo: "INFO", sevWarn: "WARNING", sevErr: "ERROR"}
)

var (
	pool = sync.Pool{
		New: func() any {
			return &fixed{buf: make([]byte, nlogLineSize)}
		},
	}
)

var (
	nlogs [sevErr + 1]*nlog

	logDir string
	arg0   string
	title  string

	toStderr, alsoToStderr bool

	pid int

	mu            sync.Mutex
	onceInitFiles sync.Once
)

func init() {
	pid = os.Getpid()
	arg0 = filepath.Base(os.Args[0])
	if h, err := os.Hostname(); err == nil {
		host = _shortHost(h)
	}
}

// falls back to stderr if log files cannot be created
func initFiles() {
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "recsortlogs")
	}
	now := time.Now()
	for _, sev := range []severity{sevInfo, sevErr} {
		nlog := newNlog(sev)
		if err := nlog.rotate(now); err != nil {
			os.Stderr.WriteString("Error: [nlog] unable to create logs in " + logDir + ": " + err.Error() + "\n")
			nlogs[sevInfo], nlogs[sevErr] = nil, nil
			return
		}
		nlogs[sev] = nlog
	}
}

func _shortHost(hostname string) string {
	if before, _, ok := strings.Cut(hostname, "."); ok {
		return before
	}
	return hostname
}

func fcreate(tag string, t time.Time) (f *os.File, err error) {
	if err = os.MkdirAll(logDir, 0o755); err != nil {
		return
	}
	name, link := logfname(tag, t)
	f, err = os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return
	}
	// re-symlink
	symlink := filepath.Join(logDir, link)
	os.Remove(symlink)
	os.Symlink(name, symlink)
	return
}

//
// line buffers
//

func alloc() (fb *fixed) {
	fb = pool.Get().(*fixed)
	fb.reset()
	return
}

func free(fb *fixed) { pool.Put(fb) }
