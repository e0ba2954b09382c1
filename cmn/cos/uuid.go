// Package cos provides common low-level types and utilities for all recsort packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"math/rand/v2"
	"sync"

	// NOTE: BEWARE: `shortid` uses hardcoded 01/2016 as a starting timestamp
	"github.com/teris-io/shortid"
)

const (
	// Alphabet for generating UUIDs similar to the shortid.DEFAULT_ABC
	uuidABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"

	LetterRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LenRunes    = len(LetterRunes)
)

var (
	sids     [4]*shortid.Shortid
	sidsOnce sync.Once
)

func InitShortid(seed uint64) {
	for i := range sids {
		sids[i] = shortid.MustNew(uint8(i+1) /*worker*/, uuidABC, seed)
	}
}

// GenUUID generates unique and user-friendly IDs.
func GenUUID() (uuid string) {
	sidsOnce.Do(func() {
		if sids[0] == nil {
			InitShortid(rand.Uint64())
		}
	})
	var err error
	for _, sid := range sids {
		uuid, err = sid.Generate()
		if err == nil &&
			uuid[0] != '-' && uuid[0] != '_' && uuid[len(uuid)-1] != '-' && uuid[len(uuid)-1] != '_' {
			return
		}
	}
	return RandString(9)
}

func RandString(n int) string {
	b := make([]byte, n)
	for i := range n {
		b[i] = LetterRunes[rand.IntN(LenRunes)]
	}
	return string(b)
}
