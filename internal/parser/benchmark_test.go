package parser

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkRegexParser measures single-line matching throughput.
func BenchmarkRegexParser(b *testing.B) {
	p, _ := NewRegexParser(testPattern)
	line := "2024-03-12 09:13:34,000 INFO django.request: /api/v1/reviews/"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Parse(line)
	}
}

// BenchmarkParserThroughput measures sustained lines/sec over a mixed batch.
func BenchmarkParserThroughput(b *testing.B) {
	p, _ := NewRegexParser(testPattern)

	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, "2024-03-12 09:13:34,000 INFO django.request: /api/v1/items/%d/\n", i)
		case 1:
			fmt.Fprintf(&sb, "2024-03-12 09:13:34,000 ERROR django.request: /admin/%d/\n", i)
		case 2:
			fmt.Fprintf(&sb, "2024-03-12 09:13:34,000 DEBUG django.db.backends: (0.%03d) SELECT 1;\n", i)
		}
	}
	batch := sb.String()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseReader(strings.NewReader(batch)); err != nil {
			b.Fatal(err)
		}
	}
}
