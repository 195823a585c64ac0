package exercises

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key of an Object
type Field struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its keys in insertion order
type Object []Field

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", f.Key, err)
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshaling value of %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
