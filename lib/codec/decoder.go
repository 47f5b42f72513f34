package codec

import (
	"io"
	"math"

	"github.com/ValentinKolb/fastobj/lib/channel"
)

// --------------------------------------------------------------------------
// Decoder
// --------------------------------------------------------------------------

// decClass is one resolved entry of the decoder's type dictionary
type decClass struct {
	name    string
	version uint64
	factory Factory
}

// Decoder reads the opcode stream produced by an Encoder and rebuilds its
// dictionaries by mirroring the encoder's ID assignment order. Correctness
// depends entirely on both sides processing operations in the same order, so
// any out-of-range ID or unexpected opcode aborts the read with
// RetCCorruptStream: a single misinterpreted opcode desynchronizes the whole
// remaining stream.
//
// Decoders are obtained via Scope.WrapDecoder and are not safe for concurrent
// use (see the scope lifecycle documentation).
type Decoder struct {
	ch channel.IBinaryReader

	classesByID []decClass
	lastClass   int // index into classesByID, -1 before the first type

	stringsByID []string
	lastString  int // index into stringsByID, -1 before the first string
}

func newDecoder(ch channel.IBinaryReader) *Decoder {
	return &Decoder{
		ch:         ch,
		lastClass:  -1,
		lastString: -1,
	}
}

// Channel returns the underlying binary reader. Record ReadSelf callbacks
// use it for primitives the decoder does not forward.
func (d *Decoder) Channel() channel.IBinaryReader {
	return d.ch
}

// ReadRecord reads one record. A NULL marker yields a nil record. STANDARD
// defers to the channel's native deserialization. All fast-path opcodes
// resolve a type dictionary entry, construct a fresh instance via the type
// registry, verify the version token, and populate the instance through its
// ReadSelf callback (plus Validate, when implemented).
func (d *Decoder) ReadRecord() (any, error) {
	op, err := d.ch.ReadByte()
	if err != nil {
		return nil, eofError("record opcode", err)
	}

	switch op {
	case opNull:
		return nil, nil
	case opStandard:
		// native failures propagate unmodified
		metricNativeRead.Inc()
		return d.ch.ReadNative()
	}

	cls, err := d.resolveClass(op)
	if err != nil {
		metricDecodeErrors.Inc()
		return nil, err
	}

	inst := cls.factory()
	if inst == nil {
		metricDecodeErrors.Inc()
		return nil, NewErrorf(RetCInstantiationFailed, "factory for type %q returned nil", cls.name)
	}
	if v := inst.WireVersion(); v != cls.version {
		metricDecodeErrors.Inc()
		return nil, NewErrorf(RetCVersionMismatch,
			"type %q declares version %d, stream dictionary holds %d", cls.name, v, cls.version)
	}

	if err := inst.ReadSelf(d); err != nil {
		metricDecodeErrors.Inc()
		return nil, err
	}
	if v, ok := inst.(IValidatable); ok {
		if err := v.Validate(); err != nil {
			metricDecodeErrors.Inc()
			return nil, err
		}
	}

	metricRecordsRead.Inc()
	return inst, nil
}

// ReadString reads one dictionary-compressed string. A NULL marker decodes
// as the empty string; STANDARD is not valid in string position.
func (d *Decoder) ReadString() (string, error) {
	op, err := d.ch.ReadByte()
	if err != nil {
		return "", eofError("string opcode", err)
	}

	switch op {
	case opNull:
		return "", nil
	case opStandard:
		metricDecodeErrors.Inc()
		return "", NewError(RetCCorruptStream, "unexpected STANDARD opcode in string position")
	case opFastNew:
		s, err := d.ch.ReadString()
		if err != nil {
			return "", eofError("string literal", err)
		}
		d.stringsByID = append(d.stringsByID, s)
		d.lastString = len(d.stringsByID) - 1
		metricStringsRead.Inc()
		return s, nil
	case opFastSame:
		if d.lastString < 0 {
			metricDecodeErrors.Inc()
			return "", NewError(RetCCorruptStream, "FAST_SAME with no previously resolved string")
		}
		metricStringsRead.Inc()
		return d.stringsByID[d.lastString], nil
	}

	id, err := d.readRefID(op)
	if err != nil {
		metricDecodeErrors.Inc()
		return "", err
	}
	if id >= uint32(len(d.stringsByID)) {
		metricDecodeErrors.Inc()
		return "", NewErrorf(RetCCorruptStream,
			"string ID %d out of range (dictionary holds %d entries)", id, len(d.stringsByID))
	}
	d.lastString = int(id)
	metricStringsRead.Inc()
	return d.stringsByID[id], nil
}

// --------------------------------------------------------------------------
// Primitive Forwarders (for ReadSelf callbacks)
// --------------------------------------------------------------------------

func (d *Decoder) ReadByte() (byte, error) {
	b, err := d.ch.ReadByte()
	return b, eofError("byte", err)
}

func (d *Decoder) ReadUint16() (uint16, error) {
	v, err := d.ch.ReadUint16()
	return v, eofError("uint16", err)
}

func (d *Decoder) ReadUint32() (uint32, error) {
	v, err := d.ch.ReadUint32()
	return v, eofError("uint32", err)
}

func (d *Decoder) ReadUint64() (uint64, error) {
	v, err := d.ch.ReadUint64()
	return v, eofError("uint64", err)
}

func (d *Decoder) ReadBytes(p []byte) error {
	return eofError("bytes", d.ch.ReadBytes(p))
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// resolveClass turns a fast-path opcode into a type dictionary entry,
// inserting a new entry for FAST_NEW
func (d *Decoder) resolveClass(op byte) (*decClass, error) {
	switch op {
	case opFastNew:
		name, err := d.ch.ReadString()
		if err != nil {
			return nil, eofError("type descriptor", err)
		}
		version, err := d.ch.ReadUint64()
		if err != nil {
			return nil, eofError("version token", err)
		}
		factory, ok := lookupFactory(name)
		if !ok {
			return nil, NewErrorf(RetCInstantiationFailed, "type %q is not registered", name)
		}
		d.classesByID = append(d.classesByID, decClass{name: name, version: version, factory: factory})
		d.lastClass = len(d.classesByID) - 1
		return &d.classesByID[d.lastClass], nil

	case opFastSame:
		if d.lastClass < 0 {
			return nil, NewError(RetCCorruptStream, "FAST_SAME with no previously resolved type")
		}
		return &d.classesByID[d.lastClass], nil
	}

	id, err := d.readRefID(op)
	if err != nil {
		return nil, err
	}
	if id >= uint32(len(d.classesByID)) {
		return nil, NewErrorf(RetCCorruptStream,
			"type ID %d out of range (dictionary holds %d entries)", id, len(d.classesByID))
	}
	d.lastClass = int(id)
	return &d.classesByID[id], nil
}

// readRefID decodes a dictionary ID from a reference opcode, exactly
// mirroring the encoder's writeRef
func (d *Decoder) readRefID(op byte) (uint32, error) {
	switch op {
	case opFastSeenShort:
		off, err := d.ch.ReadUint16()
		if err != nil {
			return 0, eofError("short ID offset", err)
		}
		return inlineIDCount + uint32(off), nil
	case opFastSeenInt:
		id, err := d.ch.ReadUint32()
		if err != nil {
			return 0, eofError("full-width ID", err)
		}
		// the wire carries a 4 byte signed ID, negative values are corrupt
		if id > math.MaxInt32 {
			return 0, NewErrorf(RetCCorruptStream, "negative dictionary ID %#x", id)
		}
		return id, nil
	default:
		if op < opInlineBase {
			return 0, NewErrorf(RetCCorruptStream, "unexpected opcode %#x", op)
		}
		return uint32(op - opInlineBase), nil
	}
}

// eofError maps channel exhaustion to RetCUnexpectedEOF and passes every
// other error through untouched
func eofError(what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return NewErrorf(RetCUnexpectedEOF, "channel exhausted reading %s", what)
	}
	return err
}
