package framing

import (
	"github.com/ValentinKolb/judp/rpc/common"
)

// Delimiter is the line separator joining encoded messages inside a datagram.
const Delimiter = '\n'

// EmitFunc receives a completed datagram buffer. The buffer is reused by the
// Packer after the call returns; implementations must not retain it.
type EmitFunc func(datagram []byte) error

// Packer accumulates encoded lines into a datagram buffer, flushing the
// buffer through the emit function whenever appending the next line would
// exceed the configured limit. The struct is owned by the calling function
// and carries no package-level state.
type Packer struct {
	buf   []byte
	limit int
	emit  EmitFunc
}

// NewPacker creates a new Packer with the given size limit and emit function.
func NewPacker(limit int, emit EmitFunc) *Packer {
	return &Packer{
		buf:   make([]byte, 0, limit),
		limit: limit,
		emit:  emit,
	}
}

// Append adds one encoded line to the current buffer. If the line no longer
// fits, the buffer is flushed first and a new buffer is started with the
// line. A line that alone exceeds the limit can never be packed and yields a
// *common.OversizedMessageError; the buffered lines stay untouched in that
// case.
func (p *Packer) Append(line []byte) error {
	if len(line) > p.limit {
		return &common.OversizedMessageError{Size: len(line), Limit: p.limit}
	}

	// candidate = current length + delimiter + line
	if len(p.buf) > 0 && len(p.buf)+1+len(line) > p.limit {
		if err := p.Flush(); err != nil {
			return err
		}
	}

	if len(p.buf) > 0 {
		p.buf = append(p.buf, Delimiter)
	}
	p.buf = append(p.buf, line...)
	return nil
}

// Flush emits the current buffer as one datagram if it is non-empty and
// resets the Packer. Flushing an empty Packer is a no-op.
func (p *Packer) Flush() error {
	if len(p.buf) == 0 {
		return nil
	}
	err := p.emit(p.buf)
	p.buf = p.buf[:0]
	return err
}

// Len returns the number of buffered bytes not yet emitted.
func (p *Packer) Len() int {
	return len(p.buf)
}
