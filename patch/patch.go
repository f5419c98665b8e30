package patch

import (
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Patch inserts a fixed block of field defaults into every MonoBehaviour
// block that references GUID and still has an empty field section, i.e. the
// empty m_EditorClassIdentifier is followed directly by the next GameObject
// header.
type Patch struct {
	GUID   GUID
	Fields []Field

	re          *regexp.Regexp
	replacement string
}

func New(guid GUID, fields ...Field) *Patch {
	expr := `(m_Script: \{fileID: 11500000, guid: ` + regexp.QuoteMeta(guid.String()) +
		`, type: 3\}\s+m_Name:\s+m_EditorClassIdentifier: )\s+(--- !u!1)`

	// $ is the only metacharacter in an Expand template
	block := strings.ReplaceAll(renderBlock(fields), "$", "$$")

	return &Patch{
		GUID:        guid,
		Fields:      fields,
		re:          regexp.MustCompile(expr),
		replacement: "${1}\n" + block + "${2}",
	}
}

// Apply returns content with the field block spliced in after each match,
// and the number of blocks inserted. Without a match content is returned as is.
func (p *Patch) Apply(content []byte) ([]byte, int) {
	n := len(p.re.FindAllIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return p.re.ReplaceAll(content, []byte(p.replacement)), n
}

// ApplyFile patches the file at path in place, keeping its permission bits.
// The file is written back even when nothing matched. Errors are the
// *fs.PathError values returned by the os package.
func (p *Patch) ApplyFile(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	fixed, n := p.Apply(content)
	log.Debugf("guid %s: %d match(es) in %s", p.GUID, n, path)
	if n == 0 {
		log.Warnf("no empty component block for guid %s", p.GUID)
	}

	err = os.WriteFile(path, fixed, info.Mode().Perm())
	if err != nil {
		return n, err
	}
	return n, nil
}
