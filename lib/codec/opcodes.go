package codec

import "math"

// --------------------------------------------------------------------------
// Wire Opcodes
// --------------------------------------------------------------------------

// One leading opcode byte per logical value. The byte values above
// opFastSeenInt are not opcodes in their own right: they encode the smallest
// dictionary IDs directly, with zero payload bytes.
const (
	// opNull marks an absent value, no further bytes follow
	opNull byte = iota
	// opStandard defers to the channel's native fallback serialization
	opStandard
	// opFastNew introduces a dictionary entry: length-prefixed descriptor
	// (plus an 8 byte version token for types), assigned the next free ID
	opFastNew
	// opFastSame repeats the immediately previously emitted entry, no payload
	opFastSame
	// opFastSeenShort references an entry via a 2 byte unsigned offset
	// (the inline range is subtracted first)
	opFastSeenShort
	// opFastSeenInt references an entry via a full 4 byte ID
	opFastSeenInt

	// opInlineBase is the first inline-ID byte value
	opInlineBase = opFastSeenInt + 1
)

const (
	// inlineIDCount is the number of dictionary IDs the inline byte range can
	// carry on its own (IDs 0 .. inlineIDCount-1)
	inlineIDCount = uint32(math.MaxUint8 - opFastSeenInt)

	// maxShortID is the largest ID reachable with opFastSeenShort
	maxShortID = inlineIDCount + math.MaxUint16
)
