package schemawalk

// Record is a Binance-futures aggregate-trade record: the fixed shape both
// decoders (SIMD schema walk and byte-at-a-time reference parser) produce.
// Field order matches the wire order of the Binance aggregate-trade
// payload: a, p, q, f, l, T, m.
type Record struct {
	A int64  // aggregate trade id
	P string // price
	Q string // quantity
	F int64  // first trade id
	L int64  // last trade id
	T int64  // event timestamp, epoch milliseconds
	M bool   // true if the buyer was the maker
}
