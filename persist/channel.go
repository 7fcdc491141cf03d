// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package persist implements channels to save and restore the state of models
package persist

import (
	"encoding/gob"
	"encoding/json"
	goio "io"

	"github.com/cpmech/gosl/chk"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Channel sends and receives flat records of numbers and identifiers.
// The order of calls on the receiving side must match the sending side.
type Channel interface {
	SendVector(commitTag int, data []float64) error
	RecvVector(commitTag int, data []float64) error
	SendID(commitTag int, data []int) error
	RecvID(commitTag int, data []int) error
}

// record is the unit written to the stream
type record struct {
	Tag  int       // commit tag
	Kind byte      // 'v' for vectors and 'i' for IDs
	Vals []float64 // vector data
	Ids  []int     // ID data
}

// Stream implements Channel on top of an encoder and/or a decoder
type Stream struct {
	enc Encoder
	dec Decoder
}

// NewWriter returns a channel that only sends
func NewWriter(w goio.Writer, enctype string) *Stream {
	return &Stream{enc: GetEncoder(w, enctype)}
}

// NewReader returns a channel that only receives
func NewReader(r goio.Reader, enctype string) *Stream {
	return &Stream{dec: GetDecoder(r, enctype)}
}

// SendVector sends a vector
func (o *Stream) SendVector(commitTag int, data []float64) (err error) {
	if o.enc == nil {
		return chk.Err("channel cannot send: it has been opened for reading")
	}
	rec := record{Tag: commitTag, Kind: 'v', Vals: data}
	if err = o.enc.Encode(&rec); err != nil {
		return chk.Err("cannot send vector of size %d\n%v", len(data), err)
	}
	return
}

// SendID sends a list of identifiers
func (o *Stream) SendID(commitTag int, data []int) (err error) {
	if o.enc == nil {
		return chk.Err("channel cannot send: it has been opened for reading")
	}
	rec := record{Tag: commitTag, Kind: 'i', Ids: data}
	if err = o.enc.Encode(&rec); err != nil {
		return chk.Err("cannot send ID of size %d\n%v", len(data), err)
	}
	return
}

// RecvVector receives a vector into data; len(data) must match the sent size
func (o *Stream) RecvVector(commitTag int, data []float64) (err error) {
	rec, err := o.recv(commitTag, 'v')
	if err != nil {
		return
	}
	if len(rec.Vals) != len(data) {
		return chk.Err("received vector has size %d but %d was expected", len(rec.Vals), len(data))
	}
	copy(data, rec.Vals)
	return
}

// RecvID receives a list of identifiers into data; len(data) must match the sent size
func (o *Stream) RecvID(commitTag int, data []int) (err error) {
	rec, err := o.recv(commitTag, 'i')
	if err != nil {
		return
	}
	if len(rec.Ids) != len(data) {
		return chk.Err("received ID has size %d but %d was expected", len(rec.Ids), len(data))
	}
	copy(data, rec.Ids)
	return
}

func (o *Stream) recv(commitTag int, kind byte) (rec record, err error) {
	if o.dec == nil {
		return rec, chk.Err("channel cannot receive: it has been opened for writing")
	}
	if err = o.dec.Decode(&rec); err != nil {
		return rec, chk.Err("cannot receive record\n%v", err)
	}
	if rec.Kind != kind {
		return rec, chk.Err("received record of kind %q but %q was expected", rec.Kind, kind)
	}
	if rec.Tag != commitTag {
		return rec, chk.Err("received record with commit tag %d but %d was expected", rec.Tag, commitTag)
	}
	return
}
