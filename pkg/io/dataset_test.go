package io

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameMap(t *testing.T) {
	names := NewNameMap()
	names.Set(FieldEntrez, 0)
	names.Set("GO:0000003", 1)

	require.Equal(t, 2, names.Size())
	index, ok := names.ContainsName("GO:0000003")
	require.True(t, ok)
	require.Equal(t, 1, index)
	_, ok = names.ContainsName("GO:0000019")
	require.False(t, ok)
	require.Equal(t, FieldEntrez, names.IndexToName[0])
}

func TestSet(t *testing.T) {
	reserved := NewSet(FieldEntrez, FieldClass)
	_, ok := reserved[FieldClass]
	require.True(t, ok)
	_, ok = reserved["GO:0000003"]
	require.False(t, ok)
}

func TestRecord(t *testing.T) {
	record := NewRecord(map[string]string{
		FieldEntrez:  "672",
		FieldClass:   "1",
		"GO:0000003": "0",
		"ppi_2475":   "0.5",
	})

	require.Equal(t, "672", record.Entrez())
	require.Equal(t, "1", record.Class())
	require.Equal(t, 4, record.Len())

	value, ok := record.Value("ppi_2475")
	require.True(t, ok)
	require.Equal(t, "0.5", value)

	names := record.Names()
	sort.Strings(names)
	require.Equal(t, []string{"GO:0000003", FieldClass, FieldEntrez, "ppi_2475"}, names)
}

func TestMetadataFeatureCount(t *testing.T) {
	metaData := NewMetadata()
	require.Equal(t, 0, metaData.FeatureCount())

	metaData.Attributes = []Attribute{
		{Name: FieldEntrez, Type: "string"},
		{Name: "GO:0000003", Type: "{0,1}"},
		{Name: "ppi_2475", Type: "numeric"},
		{Name: FieldClass, Type: "{0,1}"},
	}
	metaData.EntrezColumn = 0
	metaData.ClassColumn = 3
	require.Equal(t, 2, metaData.FeatureCount())
}
