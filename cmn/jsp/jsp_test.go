// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/recsort/recsort/cmn/cos"
	"github.com/recsort/recsort/cmn/jsp"
	"github.com/recsort/recsort/tools/tassert"
	"github.com/recsort/recsort/tools/trand"
)

type testStruct struct {
	Name   string            `json:"name"`
	Values []float64         `json:"values"`
	Labels map[string]string `json:"labels"`
	Count  int64             `json:"count"`
}

func newTestStruct() *testStruct {
	return &testStruct{
		Name:   trand.String(16),
		Values: trand.Floats(64, -1, 1),
		Labels: map[string]string{"algo": "merge", "attribute": trand.String(8)},
		Count:  12345,
	}
}

func equal(a, b *testStruct) bool {
	if a.Name != b.Name || a.Count != b.Count || len(a.Values) != len(b.Values) || len(a.Labels) != len(b.Labels) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	for k, v := range a.Labels {
		if b.Labels[k] != v {
			return false
		}
	}
	return true
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		opts jsp.Options
	}{
		{"plain", jsp.Options{}},
		{"indent", jsp.Plain()},
		{"compress", jsp.Options{Compress: true}},
		{"checksum", jsp.Options{Checksum: true}},
		{"sign", jsp.Options{Signature: true}},
		{"cksum-sign", jsp.CksumSign()},
		{"cc-sign", jsp.CCSign()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var (
				v   = newTestStruct()
				out = &testStruct{}
				buf = bytes.NewBuffer(jsp.EncodeBuf(v, test.opts))
			)
			tassert.CheckFatal(t, jsp.Decode(buf, out, test.opts, test.name))
			tassert.Errorf(t, equal(v, out), "%+v vs %+v", v, out)
		})
	}
}

func TestSignatureCarriesFlags(t *testing.T) {
	var (
		v   = newTestStruct()
		out = &testStruct{}
		b   = jsp.EncodeBuf(v, jsp.CCSign())
	)
	// compression and checksum come from the prefix
	tassert.CheckFatal(t, jsp.Decode(bytes.NewReader(b), out, jsp.Options{Signature: true}, "flags"))
	tassert.Errorf(t, equal(v, out), "%+v vs %+v", v, out)
}

func TestCorruption(t *testing.T) {
	b := jsp.EncodeBuf(newTestStruct(), jsp.CksumSign())

	bad := bytes.Clone(b)
	bad[len(bad)-3] ^= 0xff
	err := jsp.Decode(bytes.NewReader(bad), &testStruct{}, jsp.CksumSign(), "payload")
	tassert.Errorf(t, jsp.IsErrBadCksum(err), "expected bad checksum, got %v", err)

	bad = bytes.Clone(b)
	bad[0] = 'X'
	err = jsp.Decode(bytes.NewReader(bad), &testStruct{}, jsp.CksumSign(), "signature")
	_, ok := err.(*jsp.ErrBadSignature)
	tassert.Errorf(t, ok, "expected bad signature, got %v", err)

	bad = bytes.Clone(b)
	bad[len("recsort")]++
	err = jsp.Decode(bytes.NewReader(bad), &testStruct{}, jsp.CksumSign(), "version")
	_, ok = err.(*jsp.ErrVersion)
	tassert.Errorf(t, ok, "expected unsupported version, got %v", err)

	err = jsp.Decode(bytes.NewReader(b[:5]), &testStruct{}, jsp.CksumSign(), "truncated")
	tassert.Errorf(t, err != nil, "expected error on truncated input")
}

func TestSaveLoad(t *testing.T) {
	var (
		dir   = t.TempDir()
		fpath = filepath.Join(dir, "a", "b", "meta.json")
		v     = newTestStruct()
		out   = &testStruct{}
	)
	tassert.CheckFatal(t, jsp.Save(fpath, v, jsp.CCSign()))
	tassert.CheckFatal(t, jsp.Load(fpath, out, jsp.CCSign()))
	tassert.Errorf(t, equal(v, out), "%+v vs %+v", v, out)

	entries, err := os.ReadDir(filepath.Dir(fpath))
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, len(entries) == 1, "expected no leftover temp files, got %d entries", len(entries))

	err = jsp.Load(filepath.Join(dir, "missing.json"), out, jsp.CCSign())
	tassert.Errorf(t, cos.IsErrNotFound(err), "expected not-found, got %v", err)
}
