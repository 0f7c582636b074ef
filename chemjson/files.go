/*
 * files.go, part of gofluct.
 *
 * Copyright 2026 The gofluct authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemjson

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Codec is the compression applied to a file, chosen by its extension.
type Codec int

const (
	Plain Codec = iota
	Zstd        //.zst
	Gzip        //.gz
	Deflate     //.zz
)

//CodecFor returns the codec used for files named name.
func CodecFor(name string) Codec {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		return Zstd
	case ".gz":
		return Gzip
	case ".zz":
		return Deflate
	}
	return Plain
}

//writeCloser closes the compressor, if any, and then the file.
type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//NewWriter wraps w with the compressor of codec. Closing the returned writer
//flushes the compressor but doesn't close w.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Deflate:
		return flate.NewWriter(w, flate.BestCompression)
	}
	return &writeCloser{Writer: w}, nil
}

//Create creates the file name, compressed according to its extension.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, NewError("output", "Create", err)
	}
	buf := bufio.NewWriter(f)
	c, err := NewWriter(buf, CodecFor(name))
	if err != nil {
		f.Close()
		return nil, NewError("output", "Create", err)
	}
	return &writeCloser{Writer: c, closers: []func() error{c.Close, buf.Flush, f.Close}}, nil
}

//zstd's Decoder.Close doesn't return an error, so it can't be an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//NewReader wraps r with the decompressor of codec. Closing the returned reader
//doesn't close r.
func NewReader(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case Gzip:
		return gzip.NewReader(r)
	case Deflate:
		return flate.NewReader(r), nil
	}
	return io.NopCloser(r), nil
}

//Open opens the file name, decompressing it according to its extension.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("input", "Open", err)
	}
	d, err := NewReader(bufio.NewReader(f), CodecFor(name))
	if err != nil {
		f.Close()
		return nil, NewError("input", "Open", err)
	}
	return &readCloser{Reader: d, closers: []func() error{d.Close, f.Close}}, nil
}
