// Package zipfile implements Component D: the ZIP extra-field
// steganographic codec (spec.md §4.4). A ZIP archive's Local File Headers,
// Central Directory, and End-of-Central-Directory record are parsed into
// an in-memory ZipFile, mutated, and re-serialized bit-exactly except for
// the watermark extra fields and the offsets they shift.
package zipfile

import (
	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/internal/pool"
)

// ZipFile is a fully parsed ZIP archive: every Local File Header, every
// Central Directory entry, and the End-of-Central-Directory record.
type ZipFile struct {
	LocalFiles       []LocalFileHeader
	CentralDirectory []CentralDirectoryEntry
	EOCD             EndOfCentralDirectory
}

// Parse reads data as a sequence of Local File Headers followed by a
// Central Directory and an End-of-Central-Directory record, per spec.md
// §4.4. It returns errs.InvalidMagicBytesError if a record's magic number,
// or the stream's length, doesn't match what is expected at that position.
func Parse(data []byte) (*ZipFile, error) {
	var zf ZipFile

	pos := 0
	for pos+4 <= len(data) && le32(data[pos:]) == localFileHeaderSignature {
		lf, n, err := parseLocalFileHeader(data[pos:])
		if err != nil {
			return nil, err
		}
		zf.LocalFiles = append(zf.LocalFiles, lf)
		pos += n
	}

	for pos+4 <= len(data) && le32(data[pos:]) == centralDirectorySignature {
		cd, n, err := parseCentralDirectoryEntry(data[pos:])
		if err != nil {
			return nil, err
		}
		zf.CentralDirectory = append(zf.CentralDirectory, cd)
		pos += n
	}

	if pos+4 > len(data) || le32(data[pos:]) != endOfCentralDirectorySignature {
		return nil, &errs.InvalidMagicBytesError{Offset: pos, Got: truncatedMagic(data[pos:])}
	}

	eocd, _, err := parseEOCD(data[pos:])
	if err != nil {
		return nil, err
	}
	zf.EOCD = eocd

	return &zf, nil
}

// Serialize rewrites the archive to bytes. Local File Headers are emitted
// first, in order; Central Directory entries follow with their
// LocalHeaderOffset corrected to the (possibly shifted) offset of the
// matching Local File Header; the EOCD's CDOffset, CDSize, and record
// counts are recomputed to match.
//
// The output is assembled in a pooled buffer (internal/pool) rather than a
// freshly grown slice, since Serialize is called repeatedly (by Add, Remove,
// and every round-trip test) against archives of similar size. The final
// bytes are copied out before the buffer is returned to the pool, so the
// returned slice never aliases memory a later caller could reuse.
func (zf *ZipFile) Serialize() []byte {
	bb := pool.Get()
	defer pool.Put(bb)

	offsets := make([]uint32, len(zf.LocalFiles))
	for i, lf := range zf.LocalFiles {
		offsets[i] = uint32(bb.Len())
		bb.MustWrite(serializeLocalFileHeader(lf))
	}

	cdStart := uint32(bb.Len())
	for i, cd := range zf.CentralDirectory {
		if i < len(offsets) {
			cd.LocalHeaderOffset = offsets[i]
		}
		bb.MustWrite(serializeCentralDirectoryEntry(cd))
	}

	zf.EOCD.CDOffset = cdStart
	zf.EOCD.CDSize = uint32(bb.Len()) - cdStart
	zf.EOCD.CDRecordsThisDisk = uint16(len(zf.CentralDirectory))
	zf.EOCD.CDRecordsTotal = uint16(len(zf.CentralDirectory))

	bb.MustWrite(serializeEOCD(zf.EOCD))

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}
