// Package tradecache provides Decoder, a schema-specialized SIMD JSON
// decoder for Binance aggregate-trade records. The sibling cache package
// provides the module's other data structure, a bounded open-addressed LRU
// map from byte-string keys to uint32 counts; the two are independent and
// neither imports the other.
package tradecache
