package ihex

import (
	"io"
)

// RECORD_BYTES is the default number of data bytes per record.
const RECORD_BYTES = 32

// Writer buffers bytes into data records, flushing a record when it is full
// or when the next address does not follow the buffered run.
type Writer struct {
	w    io.Writer
	size int
	base uint16
	next uint32
	data []byte
	err  error
}

// NewWriter returns a Writer of records of at most size data bytes.
func NewWriter(w io.Writer, size int) *Writer {
	if size <= 0 || size > 0xff {
		size = RECORD_BYTES
	}
	return &Writer{
		w:    w,
		size: size,
		data: make([]byte, 0, size),
	}
}

// Emit adds the byte b at address at.
func (hw *Writer) Emit(at uint16, b byte) (err error) {
	if hw.err != nil {
		return hw.err
	}

	if len(hw.data) >= hw.size || uint32(at) != hw.next {
		err = hw.Flush()
		if err != nil {
			return
		}
		hw.base = at
		hw.next = uint32(at)
	}

	hw.data = append(hw.data, b)
	hw.next++

	return
}

// Flush writes the buffered data record, if any.
func (hw *Writer) Flush() (err error) {
	if hw.err != nil || len(hw.data) == 0 {
		return hw.err
	}

	hw.err = hw.write(Record{Address: hw.base, Type: RECORD_DATA, Data: hw.data})
	hw.data = hw.data[:0]

	return hw.err
}

// Close flushes the buffered data and writes the end of image record.
func (hw *Writer) Close() (err error) {
	err = hw.Flush()
	if err != nil {
		return
	}

	hw.err = hw.write(Record{Type: RECORD_EOF})
	return hw.err
}

func (hw *Writer) write(rec Record) (err error) {
	_, err = io.WriteString(hw.w, rec.String()+"\n")
	return
}
