package record

// Record is a loosely-typed JSON object. Field order follows the source
// document so unknown fields round-trip without reshuffling the output.
type Record struct {
	fields []field
}

type field struct {
	name  string
	value Value
}

// New returns an empty record.
func New() *Record {
	return &Record{}
}

// Len returns the number of fields.
func (record *Record) Len() int {
	if record == nil {
		return 0
	}
	return len(record.fields)
}

// Fields returns the field names in document order.
func (record *Record) Fields() []string {
	names := make([]string, 0, len(record.fields))
	for _, entry := range record.fields {
		names = append(names, entry.name)
	}
	return names
}

// Get returns the value of a field and whether it is present.
func (record *Record) Get(name string) (Value, bool) {
	if record == nil {
		return nil, false
	}
	for _, entry := range record.fields {
		if entry.name == name {
			return entry.value, true
		}
	}
	return nil, false
}

// Has reports whether a field is present.
func (record *Record) Has(name string) bool {
	_, ok := record.Get(name)
	return ok
}

// Set replaces the value of an existing field in place, or appends a
// new field at the end.
func (record *Record) Set(name string, value Value) {
	for i, entry := range record.fields {
		if entry.name == name {
			record.fields[i].value = value
			return
		}
	}
	record.fields = append(record.fields, field{name: name, value: value})
}

// Delete removes a field if present.
func (record *Record) Delete(name string) {
	for i, entry := range record.fields {
		if entry.name == name {
			record.fields = append(record.fields[:i], record.fields[i+1:]...)
			return
		}
	}
}

// Clone deep-copies the record.
func (record *Record) Clone() *Record {
	if record == nil {
		return nil
	}
	copied := &Record{fields: make([]field, len(record.fields))}
	for i, entry := range record.fields {
		copied.fields[i] = field{name: entry.name, value: CloneValue(entry.value)}
	}
	return copied
}
