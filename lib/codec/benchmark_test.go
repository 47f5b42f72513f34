package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"testing"

	"github.com/ValentinKolb/fastobj/lib/channel"
)

// benchmarkStreams returns record sequences with different reuse patterns
func benchmarkStreams() map[string][]any {
	streams := map[string][]any{}

	// one type repeated back to back, the best case for FAST_SAME
	same := make([]any, 1000)
	for i := range same {
		same[i] = &point{X: uint32(i), Y: uint32(i * 2)}
	}
	streams["SameType"] = same

	// two types alternating, exercises the inline ID range
	alternating := make([]any, 1000)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = &point{X: uint32(i)}
		} else {
			alternating[i] = &label{Name: fmt.Sprintf("label-%d", i%10)}
		}
	}
	streams["Alternating"] = alternating

	return streams
}

// BenchmarkEncode measures encoding throughput per stream shape
func BenchmarkEncode(b *testing.B) {
	for name, records := range benchmarkStreams() {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				scope := NewScope()
				err := scope.WithEncoder(channel.NewStreamWriter(&buf), func(e *Encoder) error {
					for _, r := range records {
						if err := e.WriteRecord(r); err != nil {
							return err
						}
					}
					return e.Flush()
				})
				if err != nil {
					b.Fatalf("encode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkDecode measures decoding throughput per stream shape
func BenchmarkDecode(b *testing.B) {
	for name, records := range benchmarkStreams() {
		b.Run(name, func(b *testing.B) {
			var buf bytes.Buffer
			err := NewScope().WithEncoder(channel.NewStreamWriter(&buf), func(e *Encoder) error {
				for _, r := range records {
					if err := e.WriteRecord(r); err != nil {
						return err
					}
				}
				return e.Flush()
			})
			if err != nil {
				b.Fatalf("encode failed: %v", err)
			}
			data := buf.Bytes()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				err := NewScope().WithDecoder(channel.NewStreamReader(bytes.NewReader(data)), func(d *Decoder) error {
					for range records {
						if _, err := d.ReadRecord(); err != nil {
							return err
						}
					}
					return nil
				})
				if err != nil {
					b.Fatalf("decode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkStreamSize reports the encoded size versus plain gob
func BenchmarkStreamSize(b *testing.B) {
	for name, records := range benchmarkStreams() {
		b.Run(name, func(b *testing.B) {
			var buf bytes.Buffer
			err := NewScope().WithEncoder(channel.NewStreamWriter(&buf), func(e *Encoder) error {
				for _, r := range records {
					if err := e.WriteRecord(r); err != nil {
						return err
					}
				}
				return e.Flush()
			})
			if err != nil {
				b.Fatalf("encode failed: %v", err)
			}

			var gobBuf bytes.Buffer
			gobEnc := gob.NewEncoder(&gobBuf)
			for _, r := range records {
				if err := gobEnc.Encode(r); err != nil {
					b.Fatalf("gob encode failed: %v", err)
				}
			}

			b.ReportMetric(float64(buf.Len())/float64(len(records)), "bytes/record")
			b.ReportMetric(float64(gobBuf.Len())/float64(len(records)), "gob-bytes/record")

			// Minimal loop to satisfy benchmark requirements
			for i := 0; i < b.N; i++ {
				_ = buf.Len()
			}
		})
	}
}
