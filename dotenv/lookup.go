package dotenv

// Lookup retrieves the value of a variable from an ambient environment.
// The boolean result reports whether the variable is defined.
//
// [os.LookupEnv] is a Lookup.
type Lookup func(name string) (string, bool)

// LookupMap returns a [Lookup] over the variables in m.
func LookupMap(m map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := m[name]

		return v, ok
	}
}

// NoLookup is a [Lookup] in which no variable is defined.
func NoLookup(string) (string, bool) { return "", false }

// Chain returns a [Lookup] that tries each of lookups in order.
// Nil entries are skipped.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}

			if v, ok := lookup(name); ok {
				return v, true
			}
		}

		return "", false
	}
}
