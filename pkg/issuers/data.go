package issuers

// defaultDescriptors is the shipped issuer table. Order is the stable
// presentation order. Note the Visa rule is a single-digit prefix; no other
// shipped issuer carries a 4-prefixed rule, so a leading 4 resolves Visa
// immediately.
var defaultDescriptors = []Descriptor{
	{
		ID:       Visa,
		Name:     "Visa",
		Patterns: []Pattern{Exact("4")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16, 18, 19},
		Code:     Code{Name: "CVV", Sizes: []int{3}},
	},
	{
		ID:   Mastercard,
		Name: "Mastercard",
		Patterns: []Pattern{
			Range("51", "55"),
			Range("2221", "2229"),
			Range("223", "229"),
			Range("23", "26"),
			Range("270", "271"),
			Exact("2720"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16},
		Code:    Code{Name: "CVC", Sizes: []int{3}},
	},
	{
		ID:       AmericanExpress,
		Name:     "American Express",
		Patterns: []Pattern{Exact("34"), Exact("37")},
		Gaps:     []int{4, 10},
		Lengths:  []int{15},
		Code:     Code{Name: "CID", Sizes: []int{4}},
	},
	{
		ID:   DinersClub,
		Name: "Diners Club",
		Patterns: []Pattern{
			Range("300", "305"),
			Exact("36"),
			Exact("38"),
			Exact("39"),
		},
		Gaps:    []int{4, 10},
		Lengths: []int{14, 16, 19},
		Code:    Code{Name: "CVV", Sizes: []int{3}},
	},
	{
		ID:   Discover,
		Name: "Discover",
		Patterns: []Pattern{
			Exact("6011"),
			Exact("65"),
			Range("644", "649"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16, 19},
		Code:    Code{Name: "CID", Sizes: []int{3}},
	},
	{
		ID:   JCB,
		Name: "JCB",
		Patterns: []Pattern{
			Exact("2131"),
			Exact("1800"),
			Range("3528", "3589"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16, 17, 18, 19},
		Code:    Code{Name: "CVV", Sizes: []int{3}},
	},
	{
		ID:   UnionPay,
		Name: "UnionPay",
		Patterns: []Pattern{
			Exact("620"),
			Range("624", "626"),
			Range("62100", "62182"),
			Range("62184", "62187"),
			Range("62185", "62197"),
			Range("62200", "62205"),
			Range("622010", "622999"),
			Range("62207", "62209"),
			Range("622126", "622925"),
			Range("623", "626"),
			Range("6270", "6272"),
			Range("6276", "6277"),
			Range("627700", "627779"),
			Range("627781", "627799"),
			Range("6282", "6289"),
			Exact("6291"),
			Exact("6292"),
			Exact("810"),
			Range("8110", "8131"),
			Range("8132", "8151"),
			Range("8152", "8163"),
			Range("8164", "8171"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{14, 15, 16, 17, 18, 19},
		Code:    Code{Name: "CVN", Sizes: []int{3}},
	},
	{
		ID:   Maestro,
		Name: "Maestro",
		Patterns: []Pattern{
			Range("500000", "504174"),
			Range("504176", "506698"),
			Range("506779", "508999"),
			Range("56", "59"),
			Exact("63"),
			Exact("67"),
			Exact("6"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{12, 13, 14, 15, 16, 17, 18, 19},
		Code:    Code{Name: "CVC", Sizes: []int{3}},
	},
	{
		ID:   Elo,
		Name: "Elo",
		Patterns: []Pattern{
			Exact("504175"),
			Range("506699", "506778"),
			Range("509000", "509999"),
			Exact("627780"),
			Exact("636297"),
			Exact("636368"),
			Range("650031", "650033"),
			Range("650035", "650051"),
			Range("650405", "650439"),
			Range("650485", "650538"),
			Range("650541", "650598"),
			Range("650700", "650718"),
			Range("650720", "650727"),
			Range("650901", "650978"),
			Range("651652", "651679"),
			Range("655000", "655019"),
			Range("655021", "655058"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16},
		Code:    Code{Name: "CVE", Sizes: []int{3}},
	},
	{
		ID:       Mir,
		Name:     "Mir",
		Patterns: []Pattern{Range("2200", "2204")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16, 17, 18, 19},
		Code:     Code{Name: "CVP2", Sizes: []int{3}},
	},
	{
		ID:   Hiper,
		Name: "Hiper",
		Patterns: []Pattern{
			Exact("637095"),
			Exact("63737423"),
			Exact("63743358"),
			Exact("637568"),
			Exact("637599"),
			Exact("637609"),
			Exact("637612"),
		},
		Gaps:    []int{4, 8, 12},
		Lengths: []int{16},
		Code:    Code{Name: "CVC", Sizes: []int{3}},
	},
	{
		ID:       Hipercard,
		Name:     "Hipercard",
		Patterns: []Pattern{Exact("606282")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16},
		Code:     Code{Name: "CVC", Sizes: []int{3}},
	},
}

var defaultCatalog = func() *Catalog {
	c, err := New(defaultDescriptors)
	if err != nil {
		panic("issuers: default catalog is invalid: " + err.Error())
	}
	return c
}()

// Default returns the shipped catalog. It is validated once at package
// initialization and shared by all callers.
func Default() *Catalog {
	return defaultCatalog
}

var fallbackDescriptor = &Descriptor{
	ID:       Placeholder,
	Name:     "Card",
	Patterns: nil,
	Gaps:     []int{4, 8, 12},
	Lengths:  []int{16},
	Code:     Code{Name: "CVV", Sizes: []int{3}},
}

// Fallback returns the descriptor used when input looks like a plausible
// card but no single issuer has been resolved: 4/8/12 grouping, 16 digits,
// 3-digit code.
func Fallback() *Descriptor {
	return fallbackDescriptor
}
