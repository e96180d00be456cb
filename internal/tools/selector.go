package tools

import (
	"slices"
	"strings"
)

// ActiveSet is the ordered list of tool ids a server exposes.
type ActiveSet []string

// Contains reports whether id is active.
func (a ActiveSet) Contains(id string) bool {
	return slices.Contains(a, id)
}

// Select picks the tools to expose. A non-empty allow list keeps the catalog
// ids it names and silently drops unknown ones; otherwise the default-enabled
// tools are used. The result follows catalog order.
func Select(catalog []Entry, allow []string) ActiveSet {
	wanted := make(map[string]struct{}, len(allow))
	for _, id := range allow {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = struct{}{}
		}
	}

	active := ActiveSet{}
	for _, e := range catalog {
		if len(wanted) > 0 {
			if _, ok := wanted[e.ID]; ok {
				active = append(active, e.ID)
			}
			continue
		}
		if e.EnabledByDefault {
			active = append(active, e.ID)
		}
	}
	return active
}

// ParseList splits a comma-separated tool list, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
