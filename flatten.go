package tomlpretty

// Entry is one line of a flattened document: a dotted path and its leaf.
type Entry struct {
	Key   string
	Value Value
}

// Flatten walks obj depth first and returns one entry per leaf, keyed by the
// dot-joined names of its ancestors. Nested objects never survive except as
// empty-object markers when skipEmptyObject is false.
//
// Dots inside field names are not escaped, so a field named "a.b" and a field
// "b" nested under "a" share the key "a.b". The later one wins and keeps the
// earlier position.
func Flatten(obj Object, skipEmptyObject bool) []Entry {
	f := flattener{skipEmptyObject: skipEmptyObject}
	f.walk("", obj)
	return f.entries
}

type flattener struct {
	skipEmptyObject bool
	entries         []Entry
	index           map[string]int
}

func (f *flattener) walk(prefix string, obj Object) {
	for _, m := range obj {
		key := m.Key
		if prefix != "" {
			key = prefix + "." + m.Key
		}
		sub, ok := m.Value.(Object)
		switch {
		case !ok:
			f.set(key, m.Value)
		case len(sub) > 0:
			f.walk(key, sub)
		case !f.skipEmptyObject:
			f.set(key, Object{})
		}
	}
}

func (f *flattener) set(key string, v Value) {
	if i, ok := f.index[key]; ok {
		f.entries[i].Value = v
		return
	}
	if f.index == nil {
		f.index = make(map[string]int)
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, Entry{Key: key, Value: v})
}
