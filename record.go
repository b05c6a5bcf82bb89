package tradecache

import "github.com/biggeezerdevelopment/tradecache/internal/schemawalk"

// Record is a Binance-futures aggregate-trade record, re-exported from
// internal/schemawalk so callers of Decoder never need to import the
// internal package directly.
type Record = schemawalk.Record
