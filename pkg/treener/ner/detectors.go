package ner

import "github.com/cognicore/treener/pkg/treener/tree"

// PersonDetector labels honorifics under a proper noun tag and entries of
// the PERSON gazetteer.
type PersonDetector struct{ res Resources }

// NewPersonDetector creates a PersonDetector.
func NewPersonDetector(res Resources) *PersonDetector {
	return &PersonDetector{res: res.withDefaults()}
}

func (d *PersonDetector) Label() Label { return Person }

func (d *PersonDetector) Detect(leaves []*tree.Node) {
	for _, leaf := range leaves {
		if HasLabel(leaf) {
			continue
		}
		parent, ok := d.res.parentTag(leaf)
		if !ok {
			continue
		}
		word := d.res.word(leaf)
		if d.res.Predicates.Honorific.Match(word) && parent == d.res.Tags.ProperNoun {
			labelIfAbsent(leaf, Person)
		}
		if d.res.inGazetteer(Person, word) {
			labelIfAbsent(leaf, Person)
		}
	}
}

// LocationDetector labels entries of the LOCATION gazetteer.
type LocationDetector struct{ res Resources }

// NewLocationDetector creates a LocationDetector.
func NewLocationDetector(res Resources) *LocationDetector {
	return &LocationDetector{res: res.withDefaults()}
}

func (d *LocationDetector) Label() Label { return Location }

func (d *LocationDetector) Detect(leaves []*tree.Node) {
	for _, leaf := range leaves {
		if HasLabel(leaf) {
			continue
		}
		if _, ok := d.res.parentTag(leaf); !ok {
			continue
		}
		if d.res.inGazetteer(Location, d.res.word(leaf)) {
			labelIfAbsent(leaf, Location)
		}
	}
}

// OrganizationDetector labels organization suffixes (inc., corp., ...) and
// entries of the ORGANIZATION gazetteer.
type OrganizationDetector struct{ res Resources }

// NewOrganizationDetector creates an OrganizationDetector.
func NewOrganizationDetector(res Resources) *OrganizationDetector {
	return &OrganizationDetector{res: res.withDefaults()}
}

func (d *OrganizationDetector) Label() Label { return Organization }

func (d *OrganizationDetector) Detect(leaves []*tree.Node) {
	for _, leaf := range leaves {
		if HasLabel(leaf) {
			continue
		}
		if _, ok := d.res.parentTag(leaf); !ok {
			continue
		}
		word := d.res.word(leaf)
		if d.res.Predicates.Organization.Match(word) {
			labelIfAbsent(leaf, Organization)
		}
		if d.res.inGazetteer(Organization, word) {
			labelIfAbsent(leaf, Organization)
		}
	}
}

// MoneyDetector labels money cue words and the run of numeral leaves
// directly before them ("3 500 TL").
type MoneyDetector struct{ res Resources }

// NewMoneyDetector creates a MoneyDetector.
func NewMoneyDetector(res Resources) *MoneyDetector {
	return &MoneyDetector{res: res.withDefaults()}
}

func (d *MoneyDetector) Label() Label { return Money }

func (d *MoneyDetector) Detect(leaves []*tree.Node) {
	for i, leaf := range leaves {
		if HasLabel(leaf) {
			continue
		}
		if _, ok := d.res.parentTag(leaf); !ok {
			continue
		}
		if !d.res.Predicates.Money.Match(d.res.word(leaf)) {
			continue
		}
		labelIfAbsent(leaf, Money)
		for j := i - 1; j >= 0 && d.res.isNumeral(leaves[j]); j-- {
			labelIfAbsent(leaves[j], Money)
		}
	}
}

// TimeDetector labels time cue words and, when it is a numeral, the single
// leaf directly before them ("3 Mart"). Unlike money there is no chain.
type TimeDetector struct{ res Resources }

// NewTimeDetector creates a TimeDetector.
func NewTimeDetector(res Resources) *TimeDetector {
	return &TimeDetector{res: res.withDefaults()}
}

func (d *TimeDetector) Label() Label { return Time }

func (d *TimeDetector) Detect(leaves []*tree.Node) {
	for i, leaf := range leaves {
		if HasLabel(leaf) {
			continue
		}
		if _, ok := d.res.parentTag(leaf); !ok {
			continue
		}
		if !d.res.Predicates.Time.Match(d.res.word(leaf)) {
			continue
		}
		labelIfAbsent(leaf, Time)
		if i > 0 && d.res.isNumeral(leaves[i-1]) {
			labelIfAbsent(leaves[i-1], Time)
		}
	}
}

// StandardDetectors returns the five detectors in priority order: Person,
// Location, Organization, Money, Time. A leaf matching several categories
// gets the one whose pass runs first.
func StandardDetectors(res Resources) []Detector {
	return []Detector{
		NewPersonDetector(res),
		NewLocationDetector(res),
		NewOrganizationDetector(res),
		NewMoneyDetector(res),
		NewTimeDetector(res),
	}
}
