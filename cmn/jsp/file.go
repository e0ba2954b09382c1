// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures with optional checksumming and compression.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/recsort/recsort/cmn/cos"
	"github.com/recsort/recsort/cmn/nlog"
)

const (
	signature = "recsort" // file signature
	version   = 1
	sizeofI64 = 8
	//                              0 ---------------- 63  64 ------------ 127
	prefLen = 2 * sizeofI64 // [ signature | jsp ver |      packing flags    ]
)

//////////////////
// main methods //
//////////////////

// Save writes v to a temporary file and renames it into place.
func Save(fpath string, v any, opts Options) (err error) {
	var (
		file *os.File
		tmp  = fpath + ".tmp." + cos.RandString(4)
	)
	if dir := filepath.Dir(fpath); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %q", dir)
		}
	}
	if file, err = os.Create(tmp); err != nil {
		return
	}
	defer func() {
		if err != nil {
			if errRm := os.Remove(tmp); errRm != nil {
				nlog.Errorf("failed to remove %s: %v", tmp, errRm)
			}
		}
	}()
	if err = Encode(file, v, opts); err != nil {
		file.Close()
		return
	}
	if err = file.Close(); err != nil {
		return
	}
	return os.Rename(tmp, fpath)
}

func Load(fpath string, v any, opts Options) error {
	file, err := os.Open(fpath)
	if err != nil {
		if cos.IsNotExist(err) {
			return cos.NewErrNotFound(nil, fpath)
		}
		return err
	}
	defer file.Close()
	err = Decode(file, v, opts, fpath)
	if err != nil && IsErrBadCksum(err) {
		nlog.Errorf("bad checksum: %s", fpath)
	}
	return err
}

func SaveMeta(fpath string, meta Opts) error { return Save(fpath, meta, meta.JspOpts()) }
func LoadMeta(fpath string, meta Opts) error { return Load(fpath, meta, meta.JspOpts()) }
