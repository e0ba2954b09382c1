// Package nlog - recsort logger, provides buffering, timestamping, writing, and
// flushing/rotating
/*
 * Copyright (c) 2023-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

var (
	MaxSize int64 = 4 * 1024 * 1024
)

// Setup must be called before the first log line; an empty dir keeps the default
// (os.TempDir()/recsortlogs).
func Setup(dir string, stderr, alsoStderr bool) {
	mu.Lock()
	if dir != "" {
		logDir = dir
	}
	toStderr, alsoToStderr = stderr, alsoStderr
	mu.Unlock()
}

func InfoDepth(depth int, args ...any)    { log(sevInfo, depth, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, 0, format, args...) }
func Warningf(format string, args ...any) { log(sevWarn, 0, format, args...) }
func ErrorDepth(depth int, args ...any)   { log(sevErr, depth, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, 0, format, args...) }

func SetTitle(s string) { title = s }

func InfoLogName() string { return arg0 + ".INFO" }
func ErrLogName() string  { return arg0 + ".ERROR" }
func LogDir() string      { return logDir }

func Flush() {
	for _, nlog := range nlogs {
		if nlog != nil {
			nlog.flush()
		}
	}
}

// FlushExit flushes and closes log files; logging afterwards goes to stderr.
func FlushExit() {
	mu.Lock()
	defer mu.Unlock()
	for i, nlog := range nlogs {
		if nlog != nil {
			nlog.flush()
			nlog.file.Close()
			nlogs[i] = nil
		}
	}
	toStderr = true
}
