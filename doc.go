// Package sitefix normalizes escaped HTML entities inside the <pre> code
// blocks of generated website pages.
//
// # Background
//
// Syntax highlighters applied to code samples that already contain entities
// (for instance XML snippets written as "&lt;tag&gt;") escape the ampersand a
// second time and sometimes split the entity letters across spans:
//
//	&amp;</span><span class="n">lt</span><span class="p">;
//
// Browsers then show "&lt;" instead of "<". Transform rewrites these
// spellings back to plain entities, but only inside <pre> elements.
//
// # Quick Start
//
//	result := sitefix.Transform(html)
//	fmt.Println(result.Replacements, "entities normalized")
//
// Files are rewritten in place:
//
//	if _, err := sitefix.ProcessFile("public/doc/index.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scanning Rules
//
// The document is scanned once, left to right. A single flag records whether
// the scan is inside a code block:
//
//  1. "<pre>" outside a block opens one; inside a block it is copied as is.
//  2. "</pre>" inside a block closes it; outside a block it is copied as is.
//  3. Entity spellings inside a block become "&lt;", "&gt;" or "&amp;".
//  4. Everything else is copied unchanged.
//
// Blocks do not nest, and an unterminated block extends to the end of the
// document.
package sitefix
