package extensions

// Lookup walks path through nested JSON objects in doc and returns the
// array found at the end. It returns an empty slice as soon as a key is
// absent, an intermediate value is not an object, or the final value is
// not an array.
func Lookup(doc any, path ...string) []any {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return []any{}
		}
		if cur, ok = obj[key]; !ok {
			return []any{}
		}
	}
	arr, ok := cur.([]any)
	if !ok {
		return []any{}
	}
	return arr
}

// Strings is Lookup restricted to string elements; other element types are skipped.
func Strings(doc any, path ...string) []string {
	arr := Lookup(doc, path...)
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
