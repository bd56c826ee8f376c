package registrysnapshot

import (
	"bytes"
	"encoding/json"
	"sort"
)

// orderedStringMap marshals a string->string map with keys sorted
// ascending, so the encoded form is independent of Go's randomized map
// iteration order. Adapted from the sorted-map marshaling the core
// snapshot format relies on for byte-stable output.
type orderedStringMap struct {
	keys   []string
	values map[string]string
}

func newOrderedStringMap(m map[string]string) orderedStringMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return orderedStringMap{keys: keys, values: m}
}

func (o orderedStringMap) MarshalJSON() ([]byte, error) {
	if len(o.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *orderedStringMap) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*o = newOrderedStringMap(m)
	return nil
}
