//go:build bench

package sitefix

import (
	"strings"
	"testing"
)

// BenchmarkTransform benchmarks a single scan over generated pages.
// Called once per file, so page size dominates.
func BenchmarkTransform(b *testing.B) {
	block := `<pre><span class="o">&amp;</span><span class="n">lt</span><span class="p">;</span>` +
		`&amp;</span><span class="n">lt</span><span class="p">;elem attr="x"&amp;gt;</pre>`
	prose := "<p>Paragraph with &amp;lt; escaped prose.</p>\n"

	inputs := []struct {
		name string
		html string
	}{
		{"prose_only", strings.Repeat(prose, 500)},
		{"blocks_only", strings.Repeat(block, 500)},
		{"mixed", strings.Repeat(prose+block, 250)},
		{"unterminated", "<pre>" + strings.Repeat("&amp;gt; ", 2000)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(input.html)))
			b.ResetTimer()

			for b.Loop() {
				_ = Transform(input.html)
			}
		})
	}
}
