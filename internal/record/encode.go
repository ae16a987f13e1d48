package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// MarshalJSON encodes the record with its fields in document order.
func (record *Record) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	if err := encodeValue(&builder, record); err != nil {
		return nil, err
	}
	return []byte(builder.String()), nil
}

// EncodeArray renders records as an indented JSON array, matching the
// two-space indentation of the exported files.
func EncodeArray(records []*Record) ([]byte, error) {
	elements := make([]Value, 0, len(records))
	for _, entry := range records {
		elements = append(elements, entry)
	}
	var builder strings.Builder
	if err := encodeValue(&builder, elements); err != nil {
		return nil, err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, []byte(builder.String()), "", "  "); err != nil {
		return nil, err
	}
	return indented.Bytes(), nil
}

func encodeValue(writer io.Writer, value Value) error {
	switch typed := value.(type) {
	case nil:
		_, err := io.WriteString(writer, "null")
		return err
	case bool:
		if typed {
			_, err := io.WriteString(writer, "true")
			return err
		}
		_, err := io.WriteString(writer, "false")
		return err
	case string:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return err
		}
		_, err = writer.Write(encoded)
		return err
	case json.Number:
		if typed.String() == "" {
			_, err := io.WriteString(writer, "0")
			return err
		}
		_, err := io.WriteString(writer, typed.String())
		return err
	case []Value:
		if _, err := io.WriteString(writer, "["); err != nil {
			return err
		}
		for i, element := range typed {
			if i > 0 {
				if _, err := io.WriteString(writer, ","); err != nil {
					return err
				}
			}
			if err := encodeValue(writer, element); err != nil {
				return err
			}
		}
		_, err := io.WriteString(writer, "]")
		return err
	case *Record:
		if typed == nil {
			_, err := io.WriteString(writer, "null")
			return err
		}
		if _, err := io.WriteString(writer, "{"); err != nil {
			return err
		}
		for i, entry := range typed.fields {
			if i > 0 {
				if _, err := io.WriteString(writer, ","); err != nil {
					return err
				}
			}
			name, err := json.Marshal(entry.name)
			if err != nil {
				return err
			}
			if _, err := writer.Write(name); err != nil {
				return err
			}
			if _, err := io.WriteString(writer, ":"); err != nil {
				return err
			}
			if err := encodeValue(writer, entry.value); err != nil {
				return err
			}
		}
		_, err := io.WriteString(writer, "}")
		return err
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
}
