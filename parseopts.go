package script

import "strconv"

// DefaultMaxDepth is the deepest nesting of parentheses the parser accepts
// unless MaxDepth says otherwise.
const DefaultMaxDepth = 64

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt   int
	longestopt struct{}
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// body is the text between the braces, and off is its byte offset in src.
	body string
	off  int
	// args is the argument table.
	args []string
	// maxdepth is the nesting limit for parentheses. Zero means the default.
	maxdepth int
	// longest selects longest-match argument references.
	longest bool
	// preset indicates that the options came from a ParsingPreset.
	preset bool
}

// col returns the 1-based position in the source of the start of rest, which
// must be a suffix of the body.
func (p *parsectx) col(rest string) int {
	return p.off + len(p.body) - len(rest) + 1
}

// MaxDepth sets the deepest nesting of parentheses the parser accepts. Deeper
// input fails with TooDeep. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("script: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// LongestMatch makes argument references in the body resolve to the longest
// parameter name they start with. By default, the first name in the argument
// list that the reference starts with is used, so that with arguments (a, ab),
// "ab" is a followed by b, which is an error.
func LongestMatch() ParseOption {
	return longestopt{}
}

func (longestopt) parseOption(p parsectx) parsectx {
	p.longest = true
	return p
}

// ParsingPreset combines several options into one. A preset panics when
// applied after any option that changes the default, but it is safe to apply
// other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.preset = true
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.maxdepth != 0 || p.longest || p.preset {
		panic("script: preset applied to non-default parse config")
	}
	p.maxdepth = o.maxdepth
	p.longest = o.longest
	p.preset = true
	return p
}
