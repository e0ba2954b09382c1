// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"bytes"
	"encoding/binary"
	"hash"
	"io"

	"github.com/OneOfOne/xxhash"
	jsoniter "github.com/json-iterator/go"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/recsort/recsort/cmn/debug"
)

const (
	flagCompress = 1 << iota
	flagChecksum
)

func EncodeBuf(v any, opts Options) []byte {
	buf := &bytes.Buffer{}
	err := Encode(buf, v, opts)
	debug.AssertNoErr(err)
	return buf.Bytes()
}

func Encode(writer io.Writer, v any, opts Options) (err error) {
	var (
		zw      *lz4.Writer
		encoder *jsoniter.Encoder
		h       hash.Hash64
		w       io.Writer
		prefix  [prefLen]byte
		buf     = &bytes.Buffer{}
	)
	w = buf
	if opts.Checksum {
		h = xxhash.New64()
		w = io.MultiWriter(h, buf)
	}
	if opts.Compress {
		zw = lz4.NewWriter(w)
		encoder = jsoniter.NewEncoder(zw)
	} else {
		encoder = jsoniter.NewEncoder(w)
	}
	if opts.Indent {
		encoder.SetIndent("", "  ")
	}
	if err = encoder.Encode(v); err != nil {
		return
	}
	if opts.Compress {
		if err = zw.Close(); err != nil {
			return
		}
	}
	if opts.Signature {
		// 1st 64-bit word
		copy(prefix[:], signature)
		l := len(signature)
		debug.Assert(l < prefLen/2)
		prefix[l] = version

		// 2nd 64-bit word: packing info
		var packingInfo uint64
		if opts.Compress {
			packingInfo |= flagCompress
		}
		if opts.Checksum {
			packingInfo |= flagChecksum
		}
		binary.BigEndian.PutUint64(prefix[sizeofI64:], packingInfo)
		if _, err = writer.Write(prefix[:]); err != nil {
			return
		}
	}
	if opts.Checksum {
		var hsum [sizeofI64]byte
		binary.BigEndian.PutUint64(hsum[:], h.Sum64())
		if _, err = writer.Write(hsum[:]); err != nil {
			return
		}
	}
	_, err = writer.Write(buf.Bytes())
	return
}

// Decode reads what Encode wrote; with opts.Signature, compression and checksum
// are taken from the prefix rather than from opts.
func Decode(reader io.Reader, v any, opts Options, tag string) error {
	var (
		decoder *jsoniter.Decoder
		prefix  [prefLen]byte
		r       = reader
	)
	if opts.Signature {
		if _, err := io.ReadFull(reader, prefix[:]); err != nil {
			return errors.Wrapf(err, "failed to read %q prefix", tag)
		}
		l := len(signature)
		if signature != string(prefix[:l]) {
			return &ErrBadSignature{tag, string(prefix[:l]), signature}
		}
		if version != prefix[l] {
			return &ErrVersion{tag, prefix[l], version}
		}
		packingInfo := binary.BigEndian.Uint64(prefix[sizeofI64:])
		opts.Compress = packingInfo&flagCompress != 0
		opts.Checksum = packingInfo&flagChecksum != 0
	}
	if opts.Checksum {
		var hsum [sizeofI64]byte
		if _, err := io.ReadFull(reader, hsum[:]); err != nil {
			return errors.Wrapf(err, "failed to read %q checksum", tag)
		}
		h := xxhash.New64()
		payload, err := io.ReadAll(io.TeeReader(reader, h))
		if err != nil {
			return errors.Wrapf(err, "failed to read %q", tag)
		}
		expected, actual := binary.BigEndian.Uint64(hsum[:]), h.Sum64()
		if expected != actual {
			return &ErrBadCksum{tag, expected, actual}
		}
		r = bytes.NewReader(payload)
	}
	if opts.Compress {
		decoder = jsoniter.NewDecoder(lz4.NewReader(r))
	} else {
		decoder = jsoniter.NewDecoder(r)
	}
	if err := decoder.Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode %q", tag)
	}
	return nil
}
