// Command bookcount downloads a plain-text book and counts word frequency
// using cache.Map, mirroring the word-frequency driver this module's map
// type was originally exercised by.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"

	"github.com/biggeezerdevelopment/tradecache/cache"
	"github.com/biggeezerdevelopment/tradecache/internal/transport"
)

const bookURL = "https://www.gutenberg.org/files/98/98-0.txt"
const tableSize = 20000

func main() {
	fmt.Println("Downloading book")
	body := transport.Download(context.Background(), bookURL)

	words := splitWords(body)
	for i := 0; i < 10 && i < len(words); i++ {
		fmt.Println(words[i])
	}
	fmt.Printf("\nTotal words: %d\n", len(words))

	table := cache.New(tableSize)
	for _, word := range words {
		if count, ok := table.Get(word); ok {
			table.Insert(word, count+1)
		} else {
			table.Insert(word, 1)
		}
	}

	sampleWords := []string{"the", "a", "12", "Gutenberg", "to", "unprecedented",
		"of", "and", "city", "1231231", "Bob", "City"}
	for _, sample := range sampleWords {
		if count, ok := table.Get([]byte(sample)); ok {
			fmt.Printf("Word: '%s' Count: %d\n", sample, count)
		} else {
			fmt.Printf("Word: '%s' not found in hash table.\n", sample)
		}
	}
}

// splitWords tokenizes on ASCII whitespace, the Go-idiomatic stand-in for
// istringstream's default extraction behavior.
func splitWords(body []byte) [][]byte {
	var words [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, append([]byte(nil), scanner.Bytes()...))
	}
	return words
}
