package scan

import "github.com/modwarden/modwarden/module/mods/types"

// Select picks the candidate to register: the first one on the preferred
// platform, otherwise the first one. candidates must not be empty.
func Select(candidates []types.Identity, preferred types.Platform) types.Identity {
	if len(candidates) == 0 {
		panic("scan: Select called without candidates")
	}
	for _, c := range candidates {
		if c.Platform() == preferred {
			return c
		}
	}
	return candidates[0]
}
