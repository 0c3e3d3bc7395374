package models

import (
	"fmt"
	"strings"
)

// Attribute names one field of a report.
type Attribute uint8

// Attributes are declared in output order.
const (
	AttrWeatherKind Attribute = iota
	AttrTemperature
	AttrCloudCoverage
	AttrHumidity
	AttrWind
	AttrPressure

	attributeCount
)

var attributeNames = [...]string{
	AttrWeatherKind:   "weather",
	AttrTemperature:   "temperature",
	AttrCloudCoverage: "clouds",
	AttrHumidity:      "humidity",
	AttrWind:          "wind",
	AttrPressure:      "pressure",
}

func (a Attribute) String() string {
	if a >= attributeCount {
		return fmt.Sprintf("attribute(%d)", uint8(a))
	}
	return attributeNames[a]
}

// AttributeNames lists the accepted attribute spellings in output order.
func AttributeNames() []string {
	return append([]string(nil), attributeNames[:]...)
}

// ParseAttribute accepts the names returned by AttributeNames, case-insensitively.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range attributeNames {
		if s == name {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q (want one of %s)", s, strings.Join(attributeNames[:], ", "))
}

// AttributeSet selects which fields a partial report carries.
type AttributeSet uint8

func NewAttributeSet(attrs ...Attribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s = s.With(a)
	}
	return s
}

// AllAttributes selects every field.
func AllAttributes() AttributeSet {
	return AttributeSet(1<<attributeCount - 1)
}

// ParseAttributeSet parses a list of attribute names. An empty list yields an
// empty set; callers decide what that means.
func ParseAttributeSet(names []string) (AttributeSet, error) {
	var s AttributeSet
	for _, n := range names {
		a, err := ParseAttribute(n)
		if err != nil {
			return 0, err
		}
		s = s.With(a)
	}
	return s, nil
}

func (s AttributeSet) With(a Attribute) AttributeSet { return s | 1<<a }

func (s AttributeSet) Has(a Attribute) bool { return s&(1<<a) != 0 }

func (s AttributeSet) IsEmpty() bool { return s == 0 }

// Attributes returns the members in output order.
func (s AttributeSet) Attributes() []Attribute {
	var out []Attribute
	for a := AttrWeatherKind; a < attributeCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s AttributeSet) String() string {
	names := make([]string, 0, attributeCount)
	for _, a := range s.Attributes() {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
