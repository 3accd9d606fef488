package config

// LookupFunc has the shape of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Resolve returns the value of name when it is present, even if empty, and
// fallback otherwise.
func Resolve(lookup LookupFunc, name, fallback string) string {
	if v, ok := lookup(name); ok {
		return v
	}
	return fallback
}
