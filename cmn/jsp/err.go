// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2021-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"errors"
	"fmt"
)

type (
	ErrBadSignature struct {
		tag      string
		got      string
		expected string
	}
	ErrVersion struct {
		tag      string
		got      byte
		expected byte
	}
	ErrBadCksum struct {
		tag              string
		expected, actual uint64
	}
)

func (e *ErrBadSignature) Error() string {
	return fmt.Sprintf("bad signature %q: got %q, expected %q", e.tag, e.got, e.expected)
}

func (e *ErrVersion) Error() string {
	return fmt.Sprintf("unsupported version %q: got %d, expected %d", e.tag, e.got, e.expected)
}

func (e *ErrBadCksum) Error() string {
	return fmt.Sprintf("bad checksum %q: expected %016x, got %016x", e.tag, e.expected, e.actual)
}

func IsErrBadCksum(err error) bool {
	var e *ErrBadCksum
	return errors.As(err, &e)
}
