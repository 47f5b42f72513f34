package codec

import (
	"reflect"

	"github.com/ValentinKolb/fastobj/lib/channel"
)

// --------------------------------------------------------------------------
// Encoder
// --------------------------------------------------------------------------

// Encoder writes records and strings onto one binary channel, assigning
// dictionary IDs to type descriptors and string values on first sight so
// repeated occurrences cost a single byte in the common case.
//
// Encoders are obtained via Scope.WrapEncoder and are not safe for concurrent
// use (see the scope lifecycle documentation).
type Encoder struct {
	ch      channel.IBinaryWriter
	types   writeDict
	strings writeDict
}

func newEncoder(ch channel.IBinaryWriter) *Encoder {
	return &Encoder{ch: ch}
}

// Channel returns the underlying binary writer. Record WriteSelf callbacks
// use it for primitives the encoder does not forward.
func (e *Encoder) Channel() channel.IBinaryWriter {
	return e.ch
}

// WriteRecord writes one record. A nil record is encoded as a 1 byte NULL
// marker. Records that do not implement IWireObject fall back to the
// channel's native serialization. Everything else goes through the type
// dictionary followed by the record's own WriteSelf callback.
func (e *Encoder) WriteRecord(v any) error {
	if isNilValue(v) {
		return e.ch.WriteByte(opNull)
	}

	wo, ok := v.(IWireObject)
	if !ok {
		metricNativeWritten.Inc()
		if err := e.ch.WriteByte(opStandard); err != nil {
			return err
		}
		return e.ch.WriteNative(v)
	}

	name := wo.WireTypeID()
	if id, same, found := e.types.lookup(name); found {
		metricDictHits.Inc()
		if err := e.writeRef(id, same); err != nil {
			return err
		}
	} else {
		metricDictInserts.Inc()
		if err := e.ch.WriteByte(opFastNew); err != nil {
			return err
		}
		if err := e.ch.WriteString(name); err != nil {
			return err
		}
		if err := e.ch.WriteUint64(wo.WireVersion()); err != nil {
			return err
		}
		e.types.insert(name)
	}

	metricRecordsWritten.Inc()
	return wo.WriteSelf(e)
}

// WriteString writes one string through the string dictionary. The literal
// bytes travel only the first time a value is seen on this channel.
func (e *Encoder) WriteString(s string) error {
	if id, same, found := e.strings.lookup(s); found {
		metricDictHits.Inc()
		if err := e.writeRef(id, same); err != nil {
			return err
		}
	} else {
		metricDictInserts.Inc()
		if err := e.ch.WriteByte(opFastNew); err != nil {
			return err
		}
		if err := e.ch.WriteString(s); err != nil {
			return err
		}
		e.strings.insert(s)
	}

	metricStringsWritten.Inc()
	return nil
}

// Flush flushes the underlying channel
func (e *Encoder) Flush() error {
	return e.ch.Flush()
}

// --------------------------------------------------------------------------
// Primitive Forwarders (for WriteSelf callbacks)
// --------------------------------------------------------------------------

func (e *Encoder) WriteByte(b byte) error     { return e.ch.WriteByte(b) }
func (e *Encoder) WriteUint16(v uint16) error { return e.ch.WriteUint16(v) }
func (e *Encoder) WriteUint32(v uint32) error { return e.ch.WriteUint32(v) }
func (e *Encoder) WriteUint64(v uint64) error { return e.ch.WriteUint64(v) }
func (e *Encoder) WriteBytes(p []byte) error  { return e.ch.WriteBytes(p) }

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// writeRef emits the cheapest reference to an already assigned dictionary ID.
// Preference order: same-as-last, inline byte, short escape, int escape.
func (e *Encoder) writeRef(id uint32, same bool) error {
	switch {
	case same:
		return e.ch.WriteByte(opFastSame)
	case id < inlineIDCount:
		return e.ch.WriteByte(opInlineBase + byte(id))
	case id <= maxShortID:
		if err := e.ch.WriteByte(opFastSeenShort); err != nil {
			return err
		}
		return e.ch.WriteUint16(uint16(id - inlineIDCount))
	default:
		if err := e.ch.WriteByte(opFastSeenInt); err != nil {
			return err
		}
		return e.ch.WriteUint32(id)
	}
}

// isNilValue reports whether v is nil, including typed nil pointers hidden
// behind the any interface
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
