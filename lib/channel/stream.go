package channel

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
)

// --------------------------------------------------------------------------
// Writer Implementation
// --------------------------------------------------------------------------

// NewStreamWriter creates a binary writer on top of an arbitrary io.Writer
// (a file, a net.Conn, a bytes.Buffer, ...). Writes are buffered, callers
// must call Flush before handing the underlying writer to a reader.
func NewStreamWriter(w io.Writer) IBinaryWriter {
	return &streamWriterImpl{w: bufio.NewWriter(w)}
}

// streamWriterImpl implements IBinaryWriter using buffered big endian writes
type streamWriterImpl struct {
	w       *bufio.Writer
	scratch [8]byte
}

func (s *streamWriterImpl) WriteByte(b byte) error {
	return s.w.WriteByte(b)
}

func (s *streamWriterImpl) WriteUint16(v uint16) error {
	binary.BigEndian.PutUint16(s.scratch[:2], v)
	_, err := s.w.Write(s.scratch[:2])
	return err
}

func (s *streamWriterImpl) WriteUint32(v uint32) error {
	binary.BigEndian.PutUint32(s.scratch[:4], v)
	_, err := s.w.Write(s.scratch[:4])
	return err
}

func (s *streamWriterImpl) WriteUint64(v uint64) error {
	binary.BigEndian.PutUint64(s.scratch[:8], v)
	_, err := s.w.Write(s.scratch[:8])
	return err
}

func (s *streamWriterImpl) WriteString(str string) error {
	if err := s.WriteUint32(uint32(len(str))); err != nil {
		return err
	}
	_, err := s.w.WriteString(str)
	return err
}

func (s *streamWriterImpl) WriteBytes(p []byte) error {
	_, err := s.w.Write(p)
	return err
}

func (s *streamWriterImpl) WriteNative(v any) error {
	// gob needs an addressable interface value to encode the concrete type
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return fmt.Errorf("native serialization failed: %v", err)
	}
	if err := s.WriteUint32(uint32(buf.Len())); err != nil {
		return err
	}
	_, err := s.w.Write(buf.Bytes())
	return err
}

func (s *streamWriterImpl) Flush() error {
	return s.w.Flush()
}

// --------------------------------------------------------------------------
// Reader Implementation
// --------------------------------------------------------------------------

// NewStreamReader creates a binary reader on top of an arbitrary io.Reader
func NewStreamReader(r io.Reader) IBinaryReader {
	return &streamReaderImpl{r: bufio.NewReader(r)}
}

// streamReaderImpl implements IBinaryReader using buffered big endian reads
type streamReaderImpl struct {
	r       *bufio.Reader
	scratch [8]byte
}

func (s *streamReaderImpl) ReadByte() (byte, error) {
	return s.r.ReadByte()
}

func (s *streamReaderImpl) ReadUint16() (uint16, error) {
	if _, err := io.ReadFull(s.r, s.scratch[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(s.scratch[:2]), nil
}

func (s *streamReaderImpl) ReadUint32() (uint32, error) {
	if _, err := io.ReadFull(s.r, s.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(s.scratch[:4]), nil
}

func (s *streamReaderImpl) ReadUint64() (uint64, error) {
	if _, err := io.ReadFull(s.r, s.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(s.scratch[:8]), nil
}

func (s *streamReaderImpl) ReadString() (string, error) {
	length, err := s.ReadUint32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (s *streamReaderImpl) ReadBytes(p []byte) error {
	_, err := io.ReadFull(s.r, p)
	return err
}

func (s *streamReaderImpl) ReadNative() (any, error) {
	length, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	var v any
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&v); err != nil {
		return nil, fmt.Errorf("native deserialization failed: %v", err)
	}
	return v, nil
}
