package codec

import (
	"github.com/lni/dragonboat/v4/logger"

	"github.com/ValentinKolb/fastobj/lib/channel"
)

var Logger = logger.GetLogger("codec")

// --------------------------------------------------------------------------
// Scope Lifecycle
// --------------------------------------------------------------------------

// Scope is the single-channel-at-a-time slot through which encoders and
// decoders are acquired. Multiple call sites on the same call stack may each
// wrap the same channel and receive the same instance; the instance (and its
// dictionary state) is torn down only when the wrap count returns to zero.
//
// A Scope belongs to one goroutine. It performs no locking internally, so
// callers must guarantee single-goroutine access for the whole lifetime of
// every wrap, and must pair every Wrap* with an Unwrap* on all exit paths
// (or use WithEncoder / WithDecoder, which guarantee the release).
type Scope struct {
	enc     *Encoder
	encCh   channel.IBinaryWriter
	encRefs int

	dec     *Decoder
	decCh   channel.IBinaryReader
	decRefs int
}

// NewScope creates an empty scope with no outstanding wraps
func NewScope() *Scope {
	return &Scope{}
}

// WrapEncoder returns the scope's shared encoder for ch, creating it empty
// on the first call and incrementing the wrap count on every call. Wrapping
// a different channel while a wrap is outstanding fails with
// RetCChannelMismatch.
func (s *Scope) WrapEncoder(ch channel.IBinaryWriter) (*Encoder, error) {
	if s.encRefs > 0 && s.encCh != ch {
		return nil, NewError(RetCChannelMismatch, "encoder scope is already bound to a different channel")
	}
	if s.encRefs == 0 {
		s.enc = newEncoder(ch)
		s.encCh = ch
		Logger.Debugf("encoder wrapped, dictionaries created")
	}
	s.encRefs++
	return s.enc, nil
}

// UnwrapEncoder decrements the wrap count. At zero the encoder and its
// dictionaries are discarded. Calling it without a matching WrapEncoder
// fails with RetCNotWrapped.
func (s *Scope) UnwrapEncoder() error {
	if s.encRefs == 0 {
		return NewError(RetCNotWrapped, "no outstanding encoder wrap")
	}
	s.encRefs--
	if s.encRefs == 0 {
		s.enc = nil
		s.encCh = nil
		Logger.Debugf("encoder unwrapped, dictionaries discarded")
	}
	return nil
}

// WrapDecoder is the decoder-side counterpart of WrapEncoder
func (s *Scope) WrapDecoder(ch channel.IBinaryReader) (*Decoder, error) {
	if s.decRefs > 0 && s.decCh != ch {
		return nil, NewError(RetCChannelMismatch, "decoder scope is already bound to a different channel")
	}
	if s.decRefs == 0 {
		s.dec = newDecoder(ch)
		s.decCh = ch
		Logger.Debugf("decoder wrapped, dictionaries created")
	}
	s.decRefs++
	return s.dec, nil
}

// UnwrapDecoder is the decoder-side counterpart of UnwrapEncoder
func (s *Scope) UnwrapDecoder() error {
	if s.decRefs == 0 {
		return NewError(RetCNotWrapped, "no outstanding decoder wrap")
	}
	s.decRefs--
	if s.decRefs == 0 {
		s.dec = nil
		s.decCh = nil
		Logger.Debugf("decoder unwrapped, dictionaries discarded")
	}
	return nil
}

// WithEncoder wraps ch, runs fn, and guarantees the matching unwrap even
// when fn returns an error or panics
func (s *Scope) WithEncoder(ch channel.IBinaryWriter, fn func(e *Encoder) error) error {
	enc, err := s.WrapEncoder(ch)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.UnwrapEncoder(); err != nil {
			Logger.Errorf("unwrap encoder failed: %v", err)
		}
	}()
	return fn(enc)
}

// WithDecoder wraps ch, runs fn, and guarantees the matching unwrap even
// when fn returns an error or panics
func (s *Scope) WithDecoder(ch channel.IBinaryReader, fn func(d *Decoder) error) error {
	dec, err := s.WrapDecoder(ch)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.UnwrapDecoder(); err != nil {
			Logger.Errorf("unwrap decoder failed: %v", err)
		}
	}()
	return fn(dec)
}
