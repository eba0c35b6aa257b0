package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type DataParameters struct {
	DataFile string
}

// Warning is a non-fatal oddity found while reading a dataset. Warnings are
// advisory; anything that would change the computed statistics is an error.
type Warning struct {
	Line    int
	Message string
}

// LoadFile reads the attribute-relation file at p.DataFile into a Dataset.
func LoadFile(p DataParameters) (*Dataset, []Warning, error) {
	inputFile, err := os.Open(p.DataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file: %w", err)
	}
	defer inputFile.Close()

	return Load(inputFile)
}

// Load reads an attribute-relation document: header declarations
// (@relation, @attribute) followed by an @data section of dense
// comma-separated rows. Values are kept as raw strings; validating them is
// the statistics layer's job. The reader requires the reserved entrez and
// class attributes to be declared.
func Load(input io.Reader) (*Dataset, []Warning, error) {
	var warnings []Warning
	metaData := NewMetadata()
	dataset := &Dataset{Meta: metaData}

	scanner := bufio.NewScanner(input)
	// Rows in GO datasets can run to tens of thousands of values
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	inData := false
	haveRelation := false
	currentLine := 0
	for scanner.Scan() {
		currentLine++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if strings.HasPrefix(line, "@") {
			directive, rest := splitDirective(line)
			switch strings.ToLower(directive) {
			case "@relation":
				metaData.Relation = unquote(strings.TrimSpace(rest))
				haveRelation = true
			case "@attribute":
				if inData {
					return nil, warnings, fmt.Errorf("attribute declared after @data at line %d", currentLine)
				}
				if !haveRelation && len(metaData.Attributes) == 0 {
					warnings = append(warnings, Warning{Line: currentLine, Message: "missing @relation declaration"})
				}
				name, attrType, err := parseAttribute(rest)
				if err != nil {
					return nil, warnings, fmt.Errorf("error parsing attribute at line %d: %w", currentLine, err)
				}
				if _, ok := metaData.AttributeIndex.ContainsName(name); ok {
					return nil, warnings, fmt.Errorf("duplicate attribute %s at line %d", name, currentLine)
				}
				column := len(metaData.Attributes)
				metaData.AttributeIndex.Set(name, column)
				metaData.Attributes = append(metaData.Attributes, Attribute{Name: name, Type: attrType})
				switch name {
				case FieldEntrez:
					metaData.EntrezColumn = column
				case FieldClass:
					metaData.ClassColumn = column
				}
				if !knownAttributeType(attrType) {
					warnings = append(warnings, Warning{
						Line:    currentLine,
						Message: fmt.Sprintf("attribute %s has unrecognized type %s, treating values as strings", name, attrType),
					})
				}
			case "@data":
				if len(metaData.Attributes) == 0 {
					return nil, warnings, fmt.Errorf("no attributes declared before @data at line %d", currentLine)
				}
				if metaData.EntrezColumn == -1 {
					return nil, warnings, fmt.Errorf("required attribute %s not declared", FieldEntrez)
				}
				if metaData.ClassColumn == -1 {
					return nil, warnings, fmt.Errorf("required attribute %s not declared", FieldClass)
				}
				inData = true
			default:
				warnings = append(warnings, Warning{Line: currentLine, Message: fmt.Sprintf("unknown directive %s", directive)})
			}
			continue
		}

		if !inData {
			return nil, warnings, fmt.Errorf("data found before @data section at line %d", currentLine)
		}
		if strings.HasPrefix(line, "{") {
			return nil, warnings, fmt.Errorf("sparse data rows are not supported (line %d)", currentLine)
		}

		values := strings.Split(line, ",")
		if len(values) != len(metaData.Attributes) {
			return nil, warnings, fmt.Errorf("line %d: expected %d values, got %d", currentLine, len(metaData.Attributes), len(values))
		}
		rowValues := make(map[string]string, len(values))
		for i, value := range values {
			rowValues[metaData.AttributeIndex.IndexToName[i]] = unquote(strings.TrimSpace(value))
		}
		dataset.Records = append(dataset.Records, NewRecord(rowValues))
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("error reading input: %w", err)
	}
	if !inData {
		return nil, warnings, fmt.Errorf("no @data section found")
	}

	return dataset, warnings, nil
}

func splitDirective(line string) (string, string) {
	sep := strings.IndexAny(line, " \t")
	if sep < 0 {
		return line, ""
	}
	return line[:sep], line[sep+1:]
}

// parseAttribute splits an @attribute declaration body into name and type.
// Names holding special characters (every GO term) come quoted.
func parseAttribute(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fmt.Errorf("empty attribute declaration")
	}
	var name, rest string
	if s[0] == '\'' || s[0] == '"' {
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 {
			return "", "", fmt.Errorf("unterminated quoted attribute name")
		}
		name = s[1 : 1+end]
		rest = s[2+end:]
	} else {
		sep := strings.IndexAny(s, " \t")
		if sep < 0 {
			return "", "", fmt.Errorf("attribute %s has no type", s)
		}
		name = s[:sep]
		rest = s[sep+1:]
	}
	attrType := strings.TrimSpace(rest)
	if name == "" {
		return "", "", fmt.Errorf("empty attribute name")
	}
	if attrType == "" {
		return "", "", fmt.Errorf("attribute %s has no type", name)
	}
	return name, attrType, nil
}

func knownAttributeType(attrType string) bool {
	if strings.HasPrefix(attrType, "{") {
		return true // nominal specification
	}
	switch strings.ToLower(firstToken(attrType)) {
	case "numeric", "real", "integer", "string", "date":
		return true
	}
	return false
}

func firstToken(s string) string {
	sep := strings.IndexAny(s, " \t")
	if sep < 0 {
		return s
	}
	return s[:sep]
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
