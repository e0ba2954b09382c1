// Package keysort provides key-based in-memory sorting with interchangeable algorithms
// and stable recovery of the original record order.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package keysort

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	fmtErrSeed      = "invalid seed %q (expecting integer value)"
	fmtErrUnordered = "key at index %d is not comparable (NaN)"
	fmtErrExhausted = "sorted key %v at index %d has no remaining source record"
)

// ErrPrecondition is wrapped by every caller-side contract violation: misaligned
// sequences, incomparable keys, or sorted keys that are not a permutation of the originals.
var ErrPrecondition = errors.New("precondition violated")

type ErrUnknownAlgorithm struct {
	kind string
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("invalid sorting algorithm %q (expecting one of: %s)", e.kind, strings.Join(Kinds(), ", "))
}

func IsErrUnknownAlgorithm(err error) bool {
	_, ok := errors.Cause(err).(*ErrUnknownAlgorithm)
	return ok
}

func IsErrPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
