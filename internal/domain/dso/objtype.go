package dso

import (
	"sort"
	"strings"
)

// Type is an OpenNGC object type code such as "G" or "OCl".
type Type string

// TypeDuplicate marks a record that duplicates another catalog entry.
const TypeDuplicate Type = "Dup"

var typeDescriptions = map[Type]string{
	"*":      "Star",
	"**":     "Double star",
	"*Ass":   "Association of stars",
	"OCl":    "Open Cluster",
	"GCl":    "Globular Cluster",
	"Cl+N":   "Star cluster + Nebula",
	"G":      "Galaxy",
	"GPair":  "Galaxy Pair",
	"GTrpl":  "Galaxy Triplet",
	"GGroup": "Group of galaxies",
	"PN":     "Planetary Nebula",
	"HII":    "HII Ionized region",
	"DrkN":   "Dark Nebula",
	"EmN":    "Emission Nebula",
	"Neb":    "Nebula",
	"RfN":    "Reflection Nebula",
	"SNR":    "Supernova remnant",
	"Nova":   "Nova star",
	"NonEx":  "Nonexistent object",
	"Other":  "Object of other/unknown type",
	"Dup":    "Duplicated record",
}

// ParseType validates a type code.
func ParseType(code string) (Type, bool) {
	t := Type(code)
	_, ok := typeDescriptions[t]
	return t, ok
}

// Description returns the human readable type name.
func (t Type) Description() string {
	if d, ok := typeDescriptions[t]; ok {
		return d
	}
	return string(t)
}

// IsDuplicate reports whether the type marks a duplicated record.
func (t Type) IsDuplicate() bool { return t == TypeDuplicate }

// Types lists every known type code, sorted.
func Types() []Type {
	out := make([]Type, 0, len(typeDescriptions))
	for t := range typeDescriptions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Group names a category of object types.
type Group string

// Type groups.
const (
	GroupAll      Group = "all"
	GroupGalaxies Group = "galaxies"
	GroupClusters Group = "clusters"
	GroupNebulae  Group = "nebulae"
)

var groupTypes = map[Group][]Type{
	GroupGalaxies: {"G"},
	GroupClusters: {"GCl", "OCl", "*Ass", "Cl+N"},
	GroupNebulae:  {"Cl+N", "EmN", "HII", "Neb", "PN", "RfN", "SNR"},
}

// ParseGroup validates a group name, case-insensitively.
func ParseGroup(name string) (Group, bool) {
	g := Group(strings.ToLower(strings.TrimSpace(name)))
	if g == GroupAll {
		return g, true
	}
	_, ok := groupTypes[g]
	return g, ok
}

// Types returns the type codes of the group. GroupAll has none: it does not restrict.
func (g Group) Types() []Type {
	return append([]Type(nil), groupTypes[g]...)
}
