package channel

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// IBinaryWriter is the sequential binary output side of a channel.
// All multi-byte integers are written in big endian byte order.
type IBinaryWriter interface {
	// WriteByte writes a single byte to the channel
	WriteByte(b byte) error
	// WriteUint16 writes a fixed-width 16 bit unsigned integer
	WriteUint16(v uint16) error
	// WriteUint32 writes a fixed-width 32 bit unsigned integer
	WriteUint32(v uint32) error
	// WriteUint64 writes a fixed-width 64 bit unsigned integer
	WriteUint64(v uint64) error
	// WriteString writes a length-prefixed UTF-8 string
	// (uint32 big endian length followed by the raw bytes)
	WriteString(s string) error
	// WriteBytes writes raw bytes without a length prefix
	WriteBytes(p []byte) error
	// WriteNative serializes an arbitrary value with the channel's native
	// (uncompressed) mechanism. The value must be encodable by encoding/gob.
	WriteNative(v any) error
	// Flush flushes any buffered bytes to the underlying writer
	Flush() error
}

// IBinaryReader is the sequential binary input side of a channel.
// Each method is the exact mirror of its IBinaryWriter counterpart.
type IBinaryReader interface {
	// ReadByte reads a single byte from the channel
	ReadByte() (byte, error)
	// ReadUint16 reads a fixed-width 16 bit unsigned integer
	ReadUint16() (uint16, error)
	// ReadUint32 reads a fixed-width 32 bit unsigned integer
	ReadUint32() (uint32, error)
	// ReadUint64 reads a fixed-width 64 bit unsigned integer
	ReadUint64() (uint64, error)
	// ReadString reads a length-prefixed UTF-8 string
	ReadString() (string, error)
	// ReadBytes fills p with exactly len(p) raw bytes
	ReadBytes(p []byte) error
	// ReadNative deserializes a value previously written with WriteNative.
	// Decoding into an interface requires the concrete type to be registered
	// with gob.Register by the host application.
	ReadNative() (any, error)
}
