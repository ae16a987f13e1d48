package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeArray parses a JSON array of records. Numbers are kept as
// json.Number literals and trailing content after the array is an
// error.
func DecodeArray(data []byte) ([]*Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}

	elements, ok := value.([]Value)
	if !ok {
		return nil, fmt.Errorf("parse json: expected a top-level array of records")
	}
	records := make([]*Record, 0, len(elements))
	for i, element := range elements {
		entry, ok := element.(*Record)
		if !ok {
			return nil, fmt.Errorf("parse json: element %d is not an object", i)
		}
		records = append(records, entry)
	}
	return records, nil
}

// UnmarshalJSON decodes a single JSON object into the record.
func (record *Record) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	value, err := decodeValue(decoder)
	if err != nil {
		return err
	}
	decoded, ok := value.(*Record)
	if !ok {
		return fmt.Errorf("expected a json object")
	}
	record.fields = decoded.fields
	return nil
}

func decodeValue(decoder *json.Decoder) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArrayBody(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", typed.String())
		}
	default:
		// string, json.Number, bool, or nil.
		return typed, nil
	}
}

func decodeObject(decoder *json.Decoder) (*Record, error) {
	decoded := New()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		decoded.Set(name, value)
	}
	// Consume the closing '}'.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return decoded, nil
}

func decodeArrayBody(decoder *json.Decoder) ([]Value, error) {
	elements := []Value{}
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		elements = append(elements, value)
	}
	// Consume the closing ']'.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return elements, nil
}
