// Package table loads tabular stock records from CSV files, normalizes them, and
// exposes attribute columns as keyed sequences for sorting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"fmt"
	"strings"
	"time"
)

// column (attribute) names, as normalized
const (
	AttrDate    = "Date"
	AttrOpen    = "Open"
	AttrHigh    = "High"
	AttrLow     = "Low"
	AttrClose   = "Close"
	AttrVolume  = "Volume"
	AttrCompany = "Company"
)

// key types
const (
	KeyInt    = "int"
	KeyFloat  = "float"
	KeyString = "string"
)

// attribute => key type; Date sorts as Unix seconds
var attrTypes = map[string]string{
	AttrDate:    KeyInt,
	AttrOpen:    KeyFloat,
	AttrHigh:    KeyFloat,
	AttrLow:     KeyFloat,
	AttrClose:   KeyFloat,
	AttrVolume:  KeyInt,
	AttrCompany: KeyString,
}

// in display order
var Attributes = []string{AttrDate, AttrOpen, AttrHigh, AttrLow, AttrClose, AttrVolume, AttrCompany}

type (
	Record struct {
		Date    time.Time
		Open    float64
		High    float64
		Low     float64
		Close   float64
		Volume  int64
		Company string
		Source  string // origin file
	}

	ErrUnknownAttribute struct {
		attr string
	}
	ErrKeyType struct {
		attr, have, want string
	}
)

// NormalizeAttr resolves a case-insensitive attribute name.
func NormalizeAttr(attr string) (string, error) {
	name := titleCase(attr)
	if _, ok := attrTypes[name]; !ok {
		return "", &ErrUnknownAttribute{attr}
	}
	return name, nil
}

// KeyType returns one of KeyInt, KeyFloat, KeyString.
func KeyType(attr string) (string, error) {
	name, err := NormalizeAttr(attr)
	if err != nil {
		return "", err
	}
	return attrTypes[name], nil
}

func (r *Record) floatKey(attr string) float64 {
	switch attr {
	case AttrOpen:
		return r.Open
	case AttrHigh:
		return r.High
	case AttrLow:
		return r.Low
	default:
		return r.Close
	}
}

func (r *Record) intKey(attr string) int64 {
	if attr == AttrDate {
		return r.Date.Unix()
	}
	return r.Volume
}

// Values returns the record's fields in `Attributes` order, formatted for display.
func (r *Record) Values() []string {
	return []string{
		r.Date.Format(time.DateOnly),
		fmtFloat(r.Open),
		fmtFloat(r.High),
		fmtFloat(r.Low),
		fmtFloat(r.Close),
		fmt.Sprintf("%d", r.Volume),
		r.Company,
	}
}

func (r *Record) String() string { return strings.Join(r.Values(), " ") }

func fmtFloat(f float64) string { return fmt.Sprintf("%.4f", f) }

func (e *ErrUnknownAttribute) Error() string {
	return fmt.Sprintf("unknown attribute %q (expecting one of: %s)", e.attr, strings.Join(Attributes, ", "))
}

func (e *ErrKeyType) Error() string {
	return fmt.Sprintf("attribute %q has %s keys, cannot extract %s keys", e.attr, e.have, e.want)
}
