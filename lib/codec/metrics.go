package codec

import "github.com/VictoriaMetrics/metrics"

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// Process-wide codec counters. Exposed through the default metrics set, the
// host application decides whether and where to publish them.
var (
	metricRecordsWritten = metrics.NewCounter(`fastobj_encoder_records_total`)
	metricStringsWritten = metrics.NewCounter(`fastobj_encoder_strings_total`)
	metricNativeWritten  = metrics.NewCounter(`fastobj_encoder_native_fallback_total`)
	metricDictInserts    = metrics.NewCounter(`fastobj_encoder_dict_inserts_total`)
	metricDictHits       = metrics.NewCounter(`fastobj_encoder_dict_hits_total`)

	metricRecordsRead  = metrics.NewCounter(`fastobj_decoder_records_total`)
	metricStringsRead  = metrics.NewCounter(`fastobj_decoder_strings_total`)
	metricNativeRead   = metrics.NewCounter(`fastobj_decoder_native_fallback_total`)
	metricDecodeErrors = metrics.NewCounter(`fastobj_decoder_errors_total`)
)
