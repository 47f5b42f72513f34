// Package channel provides the sequential binary channel abstraction that the
// codec package is layered on. A channel is a pair of unidirectional byte
// streams with fixed-width integer, length-prefixed string, and raw byte
// primitives, plus a native fallback mechanism for values that do not take
// part in the codec's fast protocol.
//
// The package focuses on:
//   - A minimal, symmetric read/write surface (IBinaryWriter / IBinaryReader)
//   - A bit-exact big endian wire layout shared by all implementations
//   - Buffered stream implementations usable on any io.Writer / io.Reader,
//     including files, in-memory buffers, and network connections
//
// Key Components:
//
//   - IBinaryWriter / IBinaryReader: Core interfaces all channel
//     implementations must satisfy. Every reader method consumes exactly the
//     bytes its writer counterpart produced.
//
//   - streamWriterImpl / streamReaderImpl: Buffered implementations created
//     with NewStreamWriter and NewStreamReader. Writers must be flushed
//     before the written bytes become visible to the underlying writer.
//
//   - Native fallback: WriteNative and ReadNative serialize arbitrary values
//     with encoding/gob as a length-prefixed blob. The codec emits these
//     verbatim for values outside its fast protocol and never reinterprets
//     the blob's bytes. Decoding into an interface value requires the host
//     application to register the concrete type with gob.Register.
//
// Thread Safety:
//
//	Channel implementations are not safe for concurrent use. A channel is
//	owned by exactly one encoder or decoder for its lifetime (see the codec
//	package's scope lifecycle).
package channel
