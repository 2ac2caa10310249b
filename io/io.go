// Package io offers serialization interfaces and round-trip checks for
// rollup objects.
package io

import (
	"bytes"
	"errors"
	"io"
	"reflect"
)

// BinaryDumper is the interface that wraps the WriteDump and ReadDump methods.
// WriteDump writes the object to w, ReadDump reads the object from r.
type BinaryDumper interface {
	WriteDump(w io.Writer) error
	ReadDump(r io.Reader) error
}

// RoundTripCheck serializes from, deserializes it into to() and checks that
// the reconstruction is deep-equal to the original and that the byte counts
// agree. Every strict prefix of the serialization must fail to deserialize.
func RoundTripCheck(from io.WriterTo, to func() io.ReaderFrom) error {
	var buf bytes.Buffer
	written, err := from.WriteTo(&buf)
	if err != nil {
		return err
	}
	if written != int64(buf.Len()) {
		return errors.New("bytes written mismatch")
	}

	reconstructed := to()
	read, err := reconstructed.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return err
	}
	if written != read {
		return errors.New("bytes written / read don't match")
	}
	if !reflect.DeepEqual(from, reconstructed) {
		return errors.New("reconstructed object don't match original")
	}

	// verify that every truncation is rejected
	for i := 0; i < buf.Len(); i++ {
		if _, err := to().ReadFrom(bytes.NewReader(buf.Bytes()[:i])); err == nil {
			return errors.New("deserializing truncated data should fail")
		}
	}
	return nil
}

// DumpRoundTripCheck is RoundTripCheck for BinaryDumper implementations.
func DumpRoundTripCheck(from BinaryDumper, to func() BinaryDumper) error {
	var buf bytes.Buffer
	if err := from.WriteDump(&buf); err != nil {
		return err
	}
	reconstructed := to()
	if err := reconstructed.ReadDump(bytes.NewReader(buf.Bytes())); err != nil {
		return err
	}
	if !reflect.DeepEqual(from, reconstructed) {
		return errors.New("reconstructed object don't match original")
	}
	return nil
}
