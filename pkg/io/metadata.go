package io

// Attribute is a single column declared in a dataset header. Type holds the
// declaration verbatim (numeric, string, a nominal spec); the reader does not
// interpret it beyond warning on unknown tokens.
type Attribute struct {
	Name string
	Type string
}

// NameMap implements a bidirectional mapping between a name and an index
type NameMap struct {
	NameToIndex map[string]int
	IndexToName map[int]string
}

func (f NameMap) Set(name string, index int) {
	f.NameToIndex[name] = index
	f.IndexToName[index] = name
}

func (f NameMap) Size() int {
	return len(f.IndexToName)
}

func (f NameMap) ContainsName(name string) (int, bool) {
	index, ok := f.NameToIndex[name]
	return index, ok

}
func NewNameMap() NameMap {
	return NameMap{
		NameToIndex: map[string]int{},
		IndexToName: map[int]string{},
	}
}

type Metadata struct {
	// Relation is the dataset name from the @relation declaration
	Relation string

	// Attributes lists the declared columns in file order
	Attributes []Attribute

	// AttributeIndex maps an attribute name to its column position
	AttributeIndex NameMap

	// EntrezColumn points to the column holding the instance identifier
	EntrezColumn int

	// ClassColumn points to the column holding the class label
	ClassColumn int
}

func NewMetadata() *Metadata {
	return &Metadata{
		AttributeIndex: NewNameMap(),
		EntrezColumn:   -1,
		ClassColumn:    -1,
	}
}

// FeatureCount is the number of declared columns that are neither the
// identifier nor the class column.
func (d *Metadata) FeatureCount() int {
	count := len(d.Attributes)
	if d.EntrezColumn >= 0 {
		count--
	}
	if d.ClassColumn >= 0 {
		count--
	}
	return count
}
