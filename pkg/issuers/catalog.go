package issuers

import "fmt"

// Issuer ids shipped in the default catalog.
const (
	Visa            = "visa"
	Mastercard      = "mastercard"
	AmericanExpress = "american-express"
	DinersClub      = "diners-club"
	Discover        = "discover"
	JCB             = "jcb"
	UnionPay        = "unionpay"
	Maestro         = "maestro"
	Elo             = "elo"
	Mir             = "mir"
	Hiper           = "hiper"
	Hipercard       = "hipercard"
)

// Placeholder is the sentinel issuer id reported while no specific issuer
// has been resolved.
const Placeholder = "placeholder"

// Catalog is an ordered, immutable set of issuer descriptors.
type Catalog struct {
	descriptors []*Descriptor
	byID        map[string]*Descriptor
}

// New builds a catalog from descriptors, preserving declaration order. It
// rejects malformed descriptors and any pair of issuers whose equal-width
// rules overlap, because such a pair would make best-match resolution
// depend on table order.
func New(descriptors []Descriptor) (*Catalog, error) {
	c := &Catalog{
		descriptors: make([]*Descriptor, 0, len(descriptors)),
		byID:        make(map[string]*Descriptor, len(descriptors)),
	}
	for i := range descriptors {
		d := descriptors[i]
		if err := validateDescriptor(&d); err != nil {
			return nil, fmt.Errorf("issuer %q: %w", d.ID, err)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("issuer %q: duplicate id", d.ID)
		}
		c.descriptors = append(c.descriptors, &d)
		c.byID[d.ID] = &d
	}
	if err := checkWidthCollisions(c.descriptors); err != nil {
		return nil, err
	}
	return c, nil
}

// All returns the descriptors in declaration order. The returned slice is a
// copy; the descriptors themselves are shared and must not be mutated.
func (c *Catalog) All() []*Descriptor {
	out := make([]*Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// Find looks up a descriptor by issuer id.
func (c *Catalog) Find(id string) (*Descriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Len returns the number of issuers in the catalog.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

func validateDescriptor(d *Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("missing id")
	}
	if len(d.Patterns) == 0 {
		return fmt.Errorf("no patterns")
	}
	for i, p := range d.Patterns {
		if err := validatePattern(p); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	if len(d.Lengths) == 0 {
		return fmt.Errorf("no lengths")
	}
	for _, l := range d.Lengths {
		if l <= 0 {
			return fmt.Errorf("length %d out of range", l)
		}
	}
	max := d.MaxLength()
	prev := 0
	for _, g := range d.Gaps {
		if g <= prev {
			return fmt.Errorf("gaps must be strictly increasing, got %v", d.Gaps)
		}
		if g >= max {
			return fmt.Errorf("gap %d not below max length %d", g, max)
		}
		prev = g
	}
	if len(d.Code.Sizes) == 0 {
		return fmt.Errorf("no security code sizes")
	}
	for _, s := range d.Code.Sizes {
		if s <= 0 {
			return fmt.Errorf("security code size %d out of range", s)
		}
	}
	return nil
}

func validatePattern(p Pattern) error {
	if p.IsRange() {
		if p.Low == "" || p.High == "" {
			return fmt.Errorf("empty rule")
		}
		if len(p.Low) != len(p.High) {
			return fmt.Errorf("range bounds %q-%q differ in width", p.Low, p.High)
		}
		if !allDigits(p.Low) || !allDigits(p.High) {
			return fmt.Errorf("range bounds %q-%q must be numeric", p.Low, p.High)
		}
		if p.Low > p.High {
			return fmt.Errorf("range bounds %q-%q inverted", p.Low, p.High)
		}
		return nil
	}
	if !allDigits(p.Prefix) {
		return fmt.Errorf("prefix %q must be numeric", p.Prefix)
	}
	return nil
}

// checkWidthCollisions rejects two issuers carrying equal-width rules that
// can match the same digit string. Such a pair would tie on match strength
// and resolve non-deterministically.
func checkWidthCollisions(descriptors []*Descriptor) error {
	for i, a := range descriptors {
		for _, b := range descriptors[i+1:] {
			for _, pa := range a.Patterns {
				for _, pb := range b.Patterns {
					if pa.Width() != pb.Width() {
						continue
					}
					if patternsOverlap(pa, pb) {
						return fmt.Errorf("issuers %q and %q: rules %s and %s collide at width %d",
							a.ID, b.ID, patternString(pa), patternString(pb), pa.Width())
					}
				}
			}
		}
	}
	return nil
}

// patternsOverlap reports whether two equal-width rules admit a common
// digit string.
func patternsOverlap(a, b Pattern) bool {
	al, ah := patternBounds(a)
	bl, bh := patternBounds(b)
	return al <= bh && bl <= ah
}

func patternBounds(p Pattern) (low, high string) {
	if p.IsRange() {
		return p.Low, p.High
	}
	return p.Prefix, p.Prefix
}

func patternString(p Pattern) string {
	if p.IsRange() {
		return p.Low + "-" + p.High
	}
	return p.Prefix
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
