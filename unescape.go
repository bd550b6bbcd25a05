package sitefix

import (
	"regexp"
	"strings"
)

// MatchKind identifies which alternative of the code sample pattern matched.
type MatchKind int

// Match kinds, in the order they are tried at a given position.
const (
	KindNone MatchKind = iota
	OpenPre
	ClosePre
	Lt1
	Lt2
	Lt3
	Gt1
	Gt2
	Gt3
	Amp1
	Amp2
)

// Canonical entities written inside code blocks.
const (
	EntityLt  = "&lt;"
	EntityGt  = "&gt;"
	EntityAmp = "&amp;"
)

// orderedKinds lists every kind in pattern order. The submatch group of
// orderedKinds[i] is i+1.
var orderedKinds = []MatchKind{OpenPre, ClosePre, Lt1, Lt2, Lt3, Gt1, Gt2, Gt3, Amp1, Amp2}

// spellings holds the literal text recognized for each kind. The wrapped
// variants come from highlighters that split the entity letters into spans.
var spellings = map[MatchKind]string{
	OpenPre:  "<pre>",
	ClosePre: "</pre>",
	Lt1:      "&amp;lt;",
	Lt2:      `&amp;</span>lt<span class="p">;`,
	Lt3:      `&amp;</span><span class="n">lt</span><span class="p">;`,
	Gt1:      "&amp;gt;",
	Gt2:      `&amp;</span>gt<span class="p">;`,
	Gt3:      `&amp;</span><span class="n">gt</span><span class="p">;`,
	Amp1:     "&amp;amp;",
	Amp2:     `&amp;</span><span class="n">amp</span><span class="p">;`,
}

var codeSamplePattern = compileCodeSamplePattern()

func compileCodeSamplePattern() *regexp.Regexp {
	alternatives := make([]string, 0, len(orderedKinds))
	for _, kind := range orderedKinds {
		alternatives = append(alternatives, "("+regexp.QuoteMeta(spellings[kind])+")")
	}
	return regexp.MustCompile(strings.Join(alternatives, "|"))
}

// Spelling returns the literal text recognized for k, or "" for KindNone.
func (k MatchKind) Spelling() string {
	return spellings[k]
}

// Canonical returns the plain entity a spelling variant normalizes to.
// Returns "" for the pre tags and KindNone.
func (k MatchKind) Canonical() string {
	switch k {
	case Lt1, Lt2, Lt3:
		return EntityLt
	case Gt1, Gt2, Gt3:
		return EntityGt
	case Amp1, Amp2:
		return EntityAmp
	}
	return ""
}

// IsEntity reports whether k is one of the escaped entity spellings.
func (k MatchKind) IsEntity() bool {
	return k.Canonical() != ""
}

func (k MatchKind) String() string {
	switch k {
	case OpenPre:
		return "open_pre"
	case ClosePre:
		return "close_pre"
	case Lt1:
		return "lt1"
	case Lt2:
		return "lt2"
	case Lt3:
		return "lt3"
	case Gt1:
		return "gt1"
	case Gt2:
		return "gt2"
	case Gt3:
		return "gt3"
	case Amp1:
		return "amp1"
	case Amp2:
		return "amp2"
	}
	return "none"
}

// kindOf returns the kind whose submatch group participated in loc.
func kindOf(loc []int) MatchKind {
	for i, kind := range orderedKinds {
		if loc[2*(i+1)] >= 0 {
			return kind
		}
	}
	return KindNone
}

// blockState tracks whether the scan is inside a <pre> element.
// Nesting is not tracked: a second <pre> keeps the state unchanged.
type blockState int

const (
	outsideBlock blockState = iota
	insideBlock
)

// next returns the state after consuming a match of kind k.
func (s blockState) next(k MatchKind) blockState {
	switch {
	case s == outsideBlock && k == OpenPre:
		return insideBlock
	case s == insideBlock && k == ClosePre:
		return outsideBlock
	}
	return s
}

// emit returns the text written for a match of kind k found in state s.
func (s blockState) emit(k MatchKind, text string) string {
	if s == insideBlock && k.IsEntity() {
		return k.Canonical()
	}
	return text
}

// Result is the outcome of a single transformation.
type Result struct {
	Output       string // transformed document
	Replacements int    // entity spellings rewritten inside code blocks
	Blocks       int    // code blocks opened
}

// Changed reports whether the output differs from the input.
func (r Result) Changed() bool {
	return r.Replacements > 0
}

// Transform normalizes escaped entity spellings inside <pre> code blocks.
// Text outside code blocks, including entity spellings, is copied unchanged.
// An unterminated <pre> keeps the block open until the end of the document.
func Transform(content string) Result {
	var (
		b       strings.Builder
		result  Result
		state   = outsideBlock
		prevEnd int
	)
	b.Grow(len(content))

	for _, loc := range codeSamplePattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := loc[0], loc[1]
		b.WriteString(content[prevEnd:start])

		kind := kindOf(loc)
		text := content[start:end]
		out := state.emit(kind, text)
		if out != text {
			result.Replacements++
		}
		if state == outsideBlock && kind == OpenPre {
			result.Blocks++
		}
		b.WriteString(out)

		state = state.next(kind)
		prevEnd = end
	}
	b.WriteString(content[prevEnd:])

	result.Output = b.String()
	return result
}

// Unescape is a shorthand for Transform(content).Output.
func Unescape(content string) string {
	return Transform(content).Output
}
