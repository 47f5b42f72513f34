// Package codec implements a compact, dictionary-compressing binary object
// codec on top of the channel package. Streams that carry many repeated
// occurrences of a small number of distinct record types and strings pay for
// each type descriptor (wire name plus version token) and each repeated
// string value exactly once per channel; every later occurrence costs a
// single opcode byte in the common case.
//
// The package focuses on:
//   - A symmetric encoder/decoder pair whose dictionaries stay in lockstep
//     by construction: IDs are assigned in first-seen order on the encoder
//     and mirrored in FAST_NEW order on the decoder
//   - A compact ID space: a "same as last" shortcut, ~250 inline 1-byte IDs,
//     and 16/32 bit escape codes for the rare pathological stream
//   - Hard failure on any desynchronization: out-of-range IDs, unexpected
//     opcodes, version token mismatches, and truncation all abort the read
//
// Key Components:
//
//   - IWireObject: The contract record types implement to take part in the
//     fast protocol (stable wire name, fixed version token, WriteSelf /
//     ReadSelf callbacks). Types without it travel uncompressed through the
//     channel's native fallback. IValidatable optionally adds a
//     post-construction Validate hook.
//
//   - Register / MustRegister: The type registry mapping wire names to
//     factories. The decoder constructs instances through registered
//     factories only, there is no reflective instantiation.
//
//   - Scope: The acquisition slot for encoders and decoders. Nested call
//     sites wrap the same channel and share one instance and one set of
//     dictionaries; the state is discarded when the wrap count returns to
//     zero. A scope is a single-goroutine resource.
//
//   - Error / RetCode: Structured error reporting. Every failure carries one
//     of the codes (ChannelMismatch, NotWrapped, CorruptStream,
//     VersionMismatch, InstantiationFailed, UnexpectedEof), retrievable with
//     CodeOf. All failures are fatal to the current operation: a stream that
//     produced one is no longer trustworthy and must be discarded.
//
// Wire Format:
//
//	Each value starts with one opcode byte. NULL and STANDARD handle absent
//	values and the native fallback. FAST_NEW carries the full descriptor
//	(length-prefixed UTF-8 name, plus an 8 byte version token for types) and
//	inserts a dictionary entry. References to existing entries use, in order
//	of preference: FAST_SAME (no payload), an inline-ID byte (no payload),
//	FAST_SEEN_SHORT (2 byte unsigned big endian offset), or FAST_SEEN_INT
//	(4 byte ID). All multi-byte integers are big endian.
//
// Usage:
//
//	codec.MustRegister(func() codec.IWireObject { return &Order{} })
//
//	scope := codec.NewScope()
//	err := scope.WithEncoder(channel.NewStreamWriter(conn), func(e *codec.Encoder) error {
//		for _, o := range orders {
//			if err := e.WriteRecord(o); err != nil {
//				return err
//			}
//		}
//		return e.Flush()
//	})
package codec
