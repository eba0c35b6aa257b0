package io

// Reserved attribute names. Every dataset carries both; the remaining
// attributes are the GO/PPI features.
const (
	FieldEntrez = "entrez"
	FieldClass  = "class"
)

type void struct{}

var Void = void{}

type Set map[string]void

func NewSet(values ...string) Set {
	set := Set{}
	for _, val := range values {
		set[val] = Void
	}
	return set
}

// Record is one dataset instance: a mapping from attribute name to the raw
// value string, built once by the reader and read-only afterwards.
type Record struct {
	values map[string]string
}

func NewRecord(values map[string]string) *Record {
	return &Record{values: values}
}

// Entrez returns the instance identifier, used in diagnostics.
func (r *Record) Entrez() string {
	return r.values[FieldEntrez]
}

// Class returns the raw class label ("0" negative, anything else positive).
func (r *Record) Class() string {
	return r.values[FieldClass]
}

// Value returns the raw value of the named attribute.
func (r *Record) Value(name string) (string, bool) {
	value, ok := r.values[name]
	return value, ok
}

// Names returns every attribute name present on the record, reserved fields
// included. The order is unspecified.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	return names
}

func (r *Record) Len() int {
	return len(r.values)
}

// Dataset is one parsed input file: the shared attribute layout plus the
// records in file order.
type Dataset struct {
	Meta    *Metadata
	Records []*Record
}

func (d *Dataset) Size() int {
	return len(d.Records)
}
