package patch

import (
	"fmt"
	"strings"
)

// Field is one serialized default written into a component block
type Field struct {
	Name  string
	Value string
}

// ObjectRef is the value Unity writes for an unassigned object reference.
const ObjectRef = "{fileID: 0}"

func (f Field) String() string {
	return fmt.Sprintf("  %s: %s", f.Name, f.Value)
}

func renderBlock(fields []Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
