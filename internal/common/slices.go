package common

// Unique returns the elements of s in first-seen order with duplicates removed.
func Unique[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Replace returns a copy of s with every occurrence of old replaced by repl.
func Replace[S ~[]E, E comparable](s S, old, repl E) S {
	out := make(S, len(s))
	for i, v := range s {
		if v == old {
			v = repl
		}

		out[i] = v
	}

	return out
}

// Remove returns a copy of s without any occurrence of v.
func Remove[S ~[]E, E comparable](s S, v E) S {
	out := make(S, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
