package fontdata

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/andybalholm/brotli"
	"github.com/tdewolff/parse/v2"
)

const binaryMagic = "GMET"
const binaryVersion = 1

// binaryEntrySize is the size of one encoded entry: a uint32 code point and five int16 values.
const binaryEntrySize = 4 + 5*2

// MarshalBinary encodes the table in a big-endian binary format: the magic "GMET", a uint16 version, a uint32 entry count and for each entry in ascending order a uint32 code point followed by five int16 values.
func (t *Table) MarshalBinary() ([]byte, error) {
	w := parse.NewBinaryWriter([]byte{})
	w.WriteBytes([]byte(binaryMagic))
	w.WriteUint16(binaryVersion)
	w.WriteUint32(uint32(t.Len()))
	t.Each(func(r rune, m Metrics) bool {
		w.WriteUint32(uint32(r))
		w.WriteInt16(m.Height)
		w.WriteInt16(m.Depth)
		w.WriteInt16(m.Width)
		w.WriteInt16(m.Left)
		w.WriteInt16(m.Right)
		return true
	})
	return w.Bytes(), nil
}

// UnmarshalBinary decodes a table encoded by MarshalBinary into t.
func (t *Table) UnmarshalBinary(b []byte) error {
	r := parse.NewBinaryReaderBytes(b)
	if r.Len() < 10 {
		return ErrInvalidTable
	} else if magic := string(r.ReadBytes(4)); magic != binaryMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidTable, magic)
	} else if version := r.ReadUint16(); version != binaryVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidTable, version)
	}

	n := r.ReadUint32()
	if MaxEntries < n {
		return ErrExceedsMemory
	} else if r.Len() != int64(n)*binaryEntrySize {
		return fmt.Errorf("%w: expected %d entries", ErrInvalidTable, n)
	}

	entries := make([]tableEntry, n)
	for i := range entries {
		code := r.ReadUint32()
		if unicode.MaxRune < code {
			return fmt.Errorf("%w: %d", ErrInvalidCodePoint, code)
		} else if 0 < i && rune(code) <= entries[i-1].Code {
			return fmt.Errorf("%w: code points must be strictly ascending", ErrInvalidTable)
		}
		entries[i].Code = rune(code)
		entries[i].Height = r.ReadInt16()
		entries[i].Depth = r.ReadInt16()
		entries[i].Width = r.ReadInt16()
		entries[i].Left = r.ReadInt16()
		entries[i].Right = r.ReadInt16()
	}
	t.entries = entries
	return nil
}

// WriteCompressed writes the binary encoding of the table compressed with brotli.
func WriteCompressed(w io.Writer, t *Table) error {
	b, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	wBrotli := brotli.NewWriter(w)
	if _, err := wBrotli.Write(b); err != nil {
		wBrotli.Close()
		return err
	}
	return wBrotli.Close()
}

// ReadCompressed reads a table written by WriteCompressed.
func ReadCompressed(r io.Reader) (*Table, error) {
	rBrotli := brotli.NewReader(r)
	dataBuf := &bytes.Buffer{}
	if n, err := io.Copy(dataBuf, io.LimitReader(rBrotli, int64(MaxMemory)+1)); err != nil {
		return nil, err
	} else if int64(MaxMemory) < n {
		return nil, ErrExceedsMemory
	}

	t := &Table{}
	if err := t.UnmarshalBinary(dataBuf.Bytes()); err != nil {
		return nil, err
	}
	return t, nil
}
