// Command aggtrades downloads a page of Binance aggregate-trade records
// and benchmarks the schema-walk decoder against the byte-at-a-time
// reference parser, reporting nanoseconds per record and the resulting
// speedup.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/biggeezerdevelopment/tradecache"
	"github.com/biggeezerdevelopment/tradecache/internal/refparse"
	"github.com/biggeezerdevelopment/tradecache/internal/transport"
)

const (
	symbol     = "BTCUSDT"
	limit      = 10
	iterations = 100000
)

func main() {
	url := fmt.Sprintf("https://fapi.binance.com/fapi/v1/aggTrades?symbol=%s&limit=%d", symbol, limit)

	fmt.Println("Downloading trade data")
	body := transport.Download(context.Background(), url)

	fmt.Println("\n========== CLASSIC PARSER BENCHMARK ==========")
	classicNsPerRecord := benchmarkClassic(body)

	fmt.Println("\n\n========== SCHEMA-WALK PARSER BENCHMARK ==========")
	walkNsPerRecord := benchmarkWalk(body)

	fmt.Println("\n\n========== PERFORMANCE COMPARISON ==========")
	fmt.Printf("Classic parser:    %.2f ns/record\n", classicNsPerRecord)
	fmt.Printf("Schema-walk parser: %.2f ns/record\n", walkNsPerRecord)
	if walkNsPerRecord > 0 {
		speedup := classicNsPerRecord / walkNsPerRecord
		improvement := (classicNsPerRecord - walkNsPerRecord) / classicNsPerRecord * 100.0
		fmt.Printf("Speedup:           %.2fx faster\n", speedup)
		fmt.Printf("Improvement:       %.2f%%\n", improvement)
	}
}

func benchmarkClassic(body []byte) float64 {
	var trades []tradecache.Record
	start := time.Now()
	for i := 0; i < iterations; i++ {
		trades = refparse.ParseRecords(body)
	}
	elapsed := time.Since(start)

	printFirstTrade(trades)
	return nsPerRecord(elapsed, len(trades))
}

func benchmarkWalk(body []byte) float64 {
	d := tradecache.NewDecoder(limit)
	defer d.Reset()

	var trades []tradecache.Record
	start := time.Now()
	for i := 0; i < iterations; i++ {
		trades, _ = d.ParseRecords(body)
	}
	elapsed := time.Since(start)

	printFirstTrade(trades)
	return nsPerRecord(elapsed, len(trades))
}

func nsPerRecord(elapsed time.Duration, recordsPerIteration int) float64 {
	total := recordsPerIteration * iterations
	if total == 0 {
		return 0
	}
	return float64(elapsed.Nanoseconds()) / float64(total)
}

func printFirstTrade(trades []tradecache.Record) {
	fmt.Println("Parsed first trade:")
	if len(trades) == 0 {
		fmt.Println("  (none)")
		return
	}
	t := trades[0]
	fmt.Printf("Trade ID: %d\n", t.A)
	fmt.Printf("  Price: %s\n", t.P)
	fmt.Printf("  Quantity: %s\n", t.Q)
	fmt.Printf("  First Trade ID: %d\n", t.F)
	fmt.Printf("  Last Trade ID: %d\n", t.L)
	fmt.Printf("  Timestamp: %d\n", t.T)
	fmt.Printf("  Buyer is maker: %t\n", t.M)
}
