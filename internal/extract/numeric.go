package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ooiea/DataExtraction/internal/model"
)

// Side restricts which adjacent number may be taken
type Side int

const (
	SideBoth   Side = iota // Number before or after the keyword
	SideBefore             // Only "24h", never "h24"
	SideAfter              // Only "DIV14"
)

// LeadingZero decides what a multi-digit token starting with 0 ("07") means
type LeadingZero int

const (
	LeadingZeroReject  LeadingZero = iota // Not a genuine count
	LeadingZeroDecimal                    // "05" reads as 0.5
	LeadingZeroAccept                     // "07" reads as 7
)

// OutputFormat selects how the chosen number is rendered
type OutputFormat int

const (
	OutputWithUnit      OutputFormat = iota // "45 DIV"
	OutputWithUnitFloat                     // "2.0 Gy", always at least one decimal
	OutputInt                               // 14
	OutputFloat                             // 14.5
)

// Range is a plausibility interval; Max is always inclusive
type Range struct {
	Min          float64
	Max          float64
	MinInclusive bool
}

// Between returns the half-open range (min, max]
func Between(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

// Closed returns the closed range [min, max]
func Closed(min, max float64) *Range {
	return &Range{Min: min, Max: max, MinInclusive: true}
}

// Contains reports whether f is plausible
func (r *Range) Contains(f float64) bool {
	if r == nil {
		return true
	}
	if f > r.Max {
		return false
	}
	if r.MinInclusive {
		return f >= r.Min
	}
	return f > r.Min
}

// NumericRule describes how one attribute reads a number next to a unit keyword
type NumericRule struct {
	Keyword       string // Regular expression for the unit/keyword
	Unit          string // Unit suffix used by the WithUnit formats
	CaseSensitive bool   // Keywords match case-insensitively unless set
	Side          Side
	Range         *Range // nil accepts any number
	LeadingZero   LeadingZero
	Scale         float64 // Multiplier applied before range check; 0 means 1
	Format        OutputFormat
	// Integer restricts tokens to whole numbers (counts such as DIV).
	// A period between digits then separates fields ("2021.14DIV" is 14)
	// while a comma marks a decimal fraction, which is rejected.
	Integer bool
}

const (
	numberPattern    = `\d+(?:[.,]\d+)?`
	integerPattern   = `\d+`
	separatorPattern = `[ _-]{0,2}`
)

// NumericResolver is a compiled NumericRule
type NumericResolver struct {
	rule    NumericRule
	re      *regexp.Regexp
	before  int // Submatch indices of the named groups
	keyword int
	after   int
}

// Compile builds the resolver. It panics on an invalid keyword pattern,
// which only happens for a broken static table.
func (r NumericRule) Compile() *NumericResolver {
	flags := "(?i)"
	if r.CaseSensitive {
		flags = ""
	}
	number := numberPattern
	if r.Integer {
		number = integerPattern
	}
	expr := flags +
		`(?:(?P<before>` + number + `)` + separatorPattern + `)?` +
		`(?P<keyword>` + r.Keyword + `)` +
		`(?:` + separatorPattern + `(?P<after>` + number + `))?`

	re := regexp.MustCompile(expr)
	return &NumericResolver{
		rule:    r,
		re:      re,
		before:  2 * re.SubexpIndex("before"),
		keyword: 2 * re.SubexpIndex("keyword"),
		after:   2 * re.SubexpIndex("after"),
	}
}

// Match is the number chosen for one keyword occurrence
type Match struct {
	Number  float64 // Scaled value
	Token   string  // Raw token as written in the path
	Keyword string  // Keyword text as written in the path
	Before  bool    // Whether the number preceded the keyword
}

type candidate struct {
	token      string
	start, end int
	distance   int
	before     bool
}

// Find locates the first keyword occurrence that yields a plausible number
func (n *NumericResolver) Find(path string) (Match, bool) {
	offset := 0
	for offset <= len(path) {
		loc := n.re.FindStringSubmatchIndex(path[offset:])
		if loc == nil {
			return Match{}, false
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += offset
			}
		}

		ks, ke := loc[n.keyword], loc[n.keyword+1]
		if ke <= ks {
			offset = nextOffset(path, ks)
			continue
		}
		// Step to the keyword end so a trailing number can serve as the
		// leading number of the next occurrence.
		offset = ke

		if gluedToLetter(path, ks, ke) {
			continue
		}

		if m, ok := n.choose(path, loc); ok {
			return m, true
		}
	}
	return Match{}, false
}

// choose ranks the adjacent numbers by distance (ties favor the left one)
// and returns the first that passes the plausibility checks
func (n *NumericResolver) choose(path string, loc []int) (Match, bool) {
	ks, ke := loc[n.keyword], loc[n.keyword+1]
	bs, be := loc[n.before], loc[n.before+1]
	as, ae := loc[n.after], loc[n.after+1]
	var cands []candidate

	if n.rule.Side != SideAfter && bs >= 0 {
		cands = append(cands, candidate{
			token:    path[bs:be],
			start:    bs,
			end:      be,
			distance: ks - be,
			before:   true,
		})
	}
	if n.rule.Side != SideBefore && as >= 0 {
		after := candidate{
			token:    path[as:ae],
			start:    as,
			end:      ae,
			distance: as - ke,
		}
		if len(cands) == 1 && after.distance < cands[0].distance {
			cands = []candidate{after, cands[0]}
		} else {
			cands = append(cands, after)
		}
	}

	for _, c := range cands {
		if n.rule.Integer && commaFraction(path, c.start, c.end) {
			continue
		}
		value, ok := n.parse(c.token)
		if !ok {
			continue
		}
		return Match{
			Number:  value,
			Token:   c.token,
			Keyword: path[ks:ke],
			Before:  c.before,
		}, true
	}
	return Match{}, false
}

// parse applies the leading-zero policy, scale and range
func (n *NumericResolver) parse(token string) (float64, bool) {
	token = strings.ReplaceAll(token, ",", ".")

	if len(token) > 1 && token[0] == '0' && !strings.Contains(token, ".") {
		switch n.rule.LeadingZero {
		case LeadingZeroReject:
			return 0, false
		case LeadingZeroDecimal:
			token = "0." + token[1:]
		}
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}

	if n.rule.Scale != 0 {
		value *= n.rule.Scale
	}

	if !n.rule.Range.Contains(value) {
		return 0, false
	}
	return value, true
}

// Resolve returns the formatted number for path, or Unknown
func (n *NumericResolver) Resolve(path string) model.Value {
	m, ok := n.Find(path)
	if !ok {
		return model.Unknown()
	}
	return n.format(m.Number)
}

func (n *NumericResolver) format(v float64) model.Value {
	switch n.rule.Format {
	case OutputInt:
		return model.Int(int64(math.Round(v)))
	case OutputFloat:
		return model.Float(v)
	case OutputWithUnitFloat:
		prec := -1
		if v == math.Trunc(v) {
			prec = 1
		}
		return model.Label(strconv.FormatFloat(v, 'f', prec, 64) + " " + n.rule.Unit)
	default:
		return model.Label(strconv.FormatFloat(v, 'f', -1, 64) + " " + n.rule.Unit)
	}
}

// NumericChain tries resolvers in priority order; the first known result wins
type NumericChain []*NumericResolver

// Resolve returns the first non-Unknown result
func (c NumericChain) Resolve(path string) model.Value {
	for _, n := range c {
		if v := n.Resolve(path); !v.IsUnknown() {
			return v
		}
	}
	return model.Unknown()
}

// gluedToLetter reports whether the keyword is part of a longer word
// ("Hz" inside "kHz", "DIV" inside "individual")
func gluedToLetter(path string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(path[:start])
		if unicode.IsLetter(r) {
			return true
		}
	}
	if end < len(path) {
		r, _ := utf8.DecodeRuneInString(path[end:])
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// commaFraction reports whether the digits at path[start:end] belong to a
// comma decimal ("14,5"), either as its integer or its fractional part
func commaFraction(path string, start, end int) bool {
	if start >= 2 && path[start-1] == ',' && isDigit(path[start-2]) {
		return true
	}
	if end+1 < len(path) && path[end] == ',' && isDigit(path[end+1]) {
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func nextOffset(path string, pos int) int {
	if pos >= len(path) {
		return len(path) + 1
	}
	_, size := utf8.DecodeRuneInString(path[pos:])
	return pos + size
}
