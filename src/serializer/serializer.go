package serializer

import (
	"encoding/json"
	"strings"
)

type Serializer interface {
	Serialize(any) ([]byte, error)
	Deserialize(any, []byte) error
}

type JsonSerializer struct{}

func (s *JsonSerializer) Serialize(a any) ([]byte, error) {
	return json.Marshal(a)
}

func (s *JsonSerializer) Deserialize(a any, b []byte) error {
	return json.Unmarshal(b, a)
}

// Writes indented JSON, reads like JsonSerializer.
type IndentedJsonSerializer struct {
	// Defaults to a tab.
	Indent string
}

func (s *IndentedJsonSerializer) Serialize(a any) ([]byte, error) {
	var indent = s.Indent
	if indent == "" {
		indent = "\t"
	}
	return json.MarshalIndent(a, "", indent)
}

func (s *IndentedJsonSerializer) Deserialize(a any, b []byte) error {
	return json.Unmarshal(b, a)
}

// Return the serializer registered under name.
//
// Names are "json" and "pretty", ok is false for anything else.
func FromString(name string) (s Serializer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return &JsonSerializer{}, true
	case "pretty":
		return &IndentedJsonSerializer{}, true
	}
	return nil, false
}
