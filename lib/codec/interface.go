package codec

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// IWireObject is the contract a record type must satisfy to take part in the
// fast dictionary protocol. Types that do not implement it are still accepted
// by the encoder but travel uncompressed via the channel's native fallback.
type IWireObject interface {
	// WireTypeID returns the process-wide-unique name of the type. The name
	// is written to the channel once per type and channel lifetime, so it
	// should be stable across releases (e.g. "myapp/order").
	WireTypeID() string
	// WireVersion returns the type's fixed version token. Decoding fails when
	// the token stored in the stream's dictionary entry differs from the one
	// the locally registered type declares.
	WireVersion() uint64
	// WriteSelf serializes the record's payload onto the encoder. It must
	// produce exactly the bytes ReadSelf consumes.
	WriteSelf(e *Encoder) error
	// ReadSelf populates the freshly constructed record from the decoder
	ReadSelf(d *Decoder) error
}

// IValidatable is an optional extension of IWireObject. When implemented,
// Validate is invoked once immediately after ReadSelf completes and before
// the record is returned to the caller.
type IValidatable interface {
	// Validate checks the record's post-construction invariants
	Validate() error
}

// Factory constructs a new, empty instance of a registered record type.
// The decoder calls it once per decoded record, then populates the instance
// via ReadSelf.
type Factory func() IWireObject
