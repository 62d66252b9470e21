package calculators

import (
	"errors"
	"sort"
	"strings"
)

const (
	ChildSupport  = "child_support"
	ParentingTime = "parenting_time"
	AssetDivision = "asset_division"
)

var ErrUnknownCalculator = errors.New("unknown calculator")

var registry = map[string]Handler{
	ChildSupport:  &ChildSupportHandler{},
	ParentingTime: &ParentingTimeHandler{},
	AssetDivision: &AssetDivisionHandler{},
}

// Get resolves a calculator by name. Route-style names ("child-support") are accepted.
func Get(name string) (Handler, bool) {
	h, ok := registry[Normalize(name)]
	return h, ok
}

func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// Names lists registered calculators in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
