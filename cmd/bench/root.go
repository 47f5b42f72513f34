package bench

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/ValentinKolb/fastobj/cmd/util"
	"github.com/ValentinKolb/fastobj/lib/channel"
	"github.com/ValentinKolb/fastobj/lib/codec"
	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BenchCmd measures codec throughput and stream sizes in-process
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Measure codec throughput and stream sizes",
		Long:    "Encodes and decodes a synthetic record stream in memory and reports timing and size statistics, including a comparison against plain gob encoding.",
		RunE:    run,
		PreRunE: processBenchConfig,
	}

	benchRecords    = 100000
	benchRounds     = 5
	benchPayloadLen = 64
	benchStringPool = 8
)

func init() {
	// add flags
	key := "records"
	BenchCmd.Flags().Int(key, 100000, util.WrapString("Number of records per benchmark round"))
	key = "rounds"
	BenchCmd.Flags().Int(key, 5, util.WrapString("Number of benchmark rounds"))
	key = "payload-size"
	BenchCmd.Flags().Int(key, 64, util.WrapString("Payload size of the blob records (in bytes)"))
	key = "string-pool"
	BenchCmd.Flags().Int(key, 8, util.WrapString("Number of distinct strings cycled through the event records"))

	// register the synthetic record types
	codec.MustRegister(func() codec.IWireObject { return &benchEvent{} })
	codec.MustRegister(func() codec.IWireObject { return &benchBlob{} })
	gob.Register(&benchEvent{})
	gob.Register(&benchBlob{})
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchRecords = viper.GetInt("records")
	benchRounds = viper.GetInt("rounds")
	benchPayloadLen = viper.GetInt("payload-size")
	benchStringPool = viper.GetInt("string-pool")

	return nil
}

// --------------------------------------------------------------------------
// Synthetic Record Types
// --------------------------------------------------------------------------

// benchEvent is a small record whose Kind field cycles through a fixed pool,
// exercising the string dictionary
type benchEvent struct {
	Seq  uint64
	Kind string
}

func (b *benchEvent) WireTypeID() string  { return "fastobj/bench/event" }
func (b *benchEvent) WireVersion() uint64 { return 1 }

func (b *benchEvent) WriteSelf(e *codec.Encoder) error {
	if err := e.WriteUint64(b.Seq); err != nil {
		return err
	}
	return e.WriteString(b.Kind)
}

func (b *benchEvent) ReadSelf(d *codec.Decoder) error {
	var err error
	if b.Seq, err = d.ReadUint64(); err != nil {
		return err
	}
	b.Kind, err = d.ReadString()
	return err
}

// benchBlob carries an opaque payload of configurable size
type benchBlob struct {
	Payload []byte
}

func (b *benchBlob) WireTypeID() string  { return "fastobj/bench/blob" }
func (b *benchBlob) WireVersion() uint64 { return 1 }

func (b *benchBlob) WriteSelf(e *codec.Encoder) error {
	if err := e.WriteUint32(uint32(len(b.Payload))); err != nil {
		return err
	}
	return e.WriteBytes(b.Payload)
}

func (b *benchBlob) ReadSelf(d *codec.Decoder) error {
	n, err := d.ReadUint32()
	if err != nil {
		return err
	}
	b.Payload = make([]byte, n)
	return d.ReadBytes(b.Payload)
}

// --------------------------------------------------------------------------
// Benchmark Run
// --------------------------------------------------------------------------

func run(_ *cobra.Command, _ []string) error {
	fmt.Println("fastobj codec benchmark")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  %-22s: %d\n", "Records per round", benchRecords)
	fmt.Printf("  %-22s: %d\n", "Rounds", benchRounds)
	fmt.Printf("  %-22s: %d bytes\n", "Blob payload size", benchPayloadLen)
	fmt.Printf("  %-22s: %d\n", "String pool size", benchStringPool)
	fmt.Println()

	records := makeRecords()

	registry := metrics.NewRegistry()
	encodeTimer := metrics.NewRegisteredTimer("encode", registry)
	decodeTimer := metrics.NewRegisteredTimer("decode", registry)

	var streamLen int
	for round := 0; round < benchRounds; round++ {
		var buf bytes.Buffer

		encodeTimer.Time(func() {
			if err := encodeAll(&buf, records); err != nil {
				panic(err)
			}
		})
		streamLen = buf.Len()

		decodeTimer.Time(func() {
			if err := decodeAll(&buf, len(records)); err != nil {
				panic(err)
			}
		})
	}

	// encode the same records with plain gob for a size baseline
	var gobBuf bytes.Buffer
	gobEnc := gob.NewEncoder(&gobBuf)
	for _, r := range records {
		if err := gobEnc.Encode(&r); err != nil {
			return fmt.Errorf("gob baseline failed: %v", err)
		}
	}

	fmt.Println("Results:")
	printTimer("encode", encodeTimer, len(records))
	printTimer("decode", decodeTimer, len(records))
	fmt.Println()
	fmt.Printf("  %-22s: %d bytes (%.1f bytes/record)\n", "Stream size",
		streamLen, float64(streamLen)/float64(len(records)))
	fmt.Printf("  %-22s: %d bytes (%.1f bytes/record)\n", "Gob baseline",
		gobBuf.Len(), float64(gobBuf.Len())/float64(len(records)))
	fmt.Printf("  %-22s: %.2fx\n", "Compression vs gob",
		float64(gobBuf.Len())/float64(streamLen))

	return nil
}

// makeRecords builds one round's worth of synthetic records
func makeRecords() []any {
	pool := make([]string, benchStringPool)
	for i := range pool {
		pool[i] = fmt.Sprintf("event-kind-%d", i)
	}

	payload := make([]byte, benchPayloadLen)
	for i := range payload {
		payload[i] = byte(i)
	}

	records := make([]any, benchRecords)
	for i := range records {
		if i%10 == 0 {
			records[i] = &benchBlob{Payload: payload}
		} else {
			records[i] = &benchEvent{Seq: uint64(i), Kind: pool[i%len(pool)]}
		}
	}
	return records
}

// encodeAll writes all records through a fresh encoder scope
func encodeAll(buf *bytes.Buffer, records []any) error {
	return codec.NewScope().WithEncoder(channel.NewStreamWriter(buf), func(e *codec.Encoder) error {
		for _, r := range records {
			if err := e.WriteRecord(r); err != nil {
				return err
			}
		}
		return e.Flush()
	})
}

// decodeAll reads n records through a fresh decoder scope
func decodeAll(buf *bytes.Buffer, n int) error {
	return codec.NewScope().WithDecoder(channel.NewStreamReader(buf), func(d *codec.Decoder) error {
		for i := 0; i < n; i++ {
			if _, err := d.ReadRecord(); err != nil {
				return err
			}
		}
		return nil
	})
}

// printTimer reports one timer in per-round and per-record terms
func printTimer(name string, t metrics.Timer, recordsPerRound int) {
	mean := time.Duration(int64(t.Mean()))
	perRecord := t.Mean() / float64(recordsPerRound)
	rate := float64(recordsPerRound) / (t.Mean() / float64(time.Second))

	fmt.Printf("  %-22s: %v/round, %.0f ns/record, %.0f records/sec\n",
		name, mean.Round(time.Microsecond), perRecord, rate)
}
