// Package ihex writes memory images as Intel HEX records.
package ihex

import (
	"encoding/hex"
	"strings"
)

// RecordType is the type field of a record.
type RecordType byte

const (
	RECORD_DATA = RecordType(0x00) // Data bytes at an address.
	RECORD_EOF  = RecordType(0x01) // End of the image.
)

// Record is a single Intel HEX line.
type Record struct {
	Address uint16
	Type    RecordType
	Data    []byte
}

// bytes returns the record fields before the checksum.
func (rec Record) bytes() []byte {
	raw := []byte{byte(len(rec.Data)), byte(rec.Address >> 8), byte(rec.Address), byte(rec.Type)}
	return append(raw, rec.Data...)
}

// Checksum returns the two's complement of the byte sum of the record, so
// that the sum of all record bytes including the checksum is zero.
func (rec Record) Checksum() (sum byte) {
	for _, b := range rec.bytes() {
		sum += b
	}
	return -sum
}

// String returns the record as an upper-case hex line, without newline.
func (rec Record) String() string {
	raw := append(rec.bytes(), rec.Checksum())
	return ":" + strings.ToUpper(hex.EncodeToString(raw))
}
