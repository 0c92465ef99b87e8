package resolve

import "sort"

// Compose applies user exclude and include lists to the resolved crate set,
// computing (crates − exclude) ∪ include. Excludes are applied first, so an
// include of the same name wins. An included name that resolved earlier
// keeps its locked version; anything else is added bare, without lock
// validation. The result is sorted by name and free of duplicates.
func Compose(crates []Crate, exclude, include []string) []Crate {
	resolved := make(map[string]Crate, len(crates))
	for _, c := range crates {
		resolved[c.Name] = c
	}

	target := make(map[string]Crate, len(crates))
	for _, c := range crates {
		target[c.Name] = c
	}
	for _, name := range exclude {
		delete(target, name)
	}
	for _, name := range include {
		if c, ok := resolved[name]; ok {
			target[name] = c
			continue
		}
		target[name] = Crate{Name: name}
	}

	out := make([]Crate, 0, len(target))
	for _, c := range target {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Selectors returns the cargo package selectors for the given crates.
func Selectors(crates []Crate) []string {
	out := make([]string, len(crates))
	for i, c := range crates {
		out[i] = c.Selector()
	}
	return out
}
