package generator

import (
	"fmt"
	"sort"
	"strings"
)

// importSet accumulates the imports a generated file needs and hands out
// collision-free package qualifiers. The runtime package is registered up
// front so its qualifier is always the plain package name regardless of what
// the scanned code imports.
type importSet struct {
	// qualifiers maps import path to the qualifier used in rendered code.
	qualifiers map[string]string
	// taken maps qualifier to the path that owns it.
	taken map[string]string
	// currentPkg is the package the generated file lives in; types declared
	// there render unqualified and add no import.
	currentPkg string
}

func newImportSet(currentPkg string) *importSet {
	s := &importSet{
		qualifiers: make(map[string]string),
		taken:      make(map[string]string),
		currentPkg: currentPkg,
	}
	return s
}

// qualify returns the qualifier for an import path, registering the import
// on first use. Name collisions between distinct paths get a numeric suffix
// in registration order.
func (s *importSet) qualify(path string) string {
	if qualifier, ok := s.qualifiers[path]; ok {
		return qualifier
	}

	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}

	qualifier := base
	for suffix := 2; ; suffix++ {
		if _, used := s.taken[qualifier]; !used {
			break
		}
		qualifier = fmt.Sprintf("%s%d", base, suffix)
	}

	s.qualifiers[path] = qualifier
	s.taken[qualifier] = path
	return qualifier
}

// render returns the import declaration block, sorted by import path. Paths
// whose qualifier differs from their last segment render with an alias.
func (s *importSet) render() string {
	if len(s.qualifiers) == 0 {
		return ""
	}

	paths := make([]string, 0, len(s.qualifiers))
	for path := range s.qualifiers {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	if len(paths) == 1 {
		b.WriteString(fmt.Sprintf("import %s\n\n", s.spec(paths[0])))
		return b.String()
	}

	b.WriteString("import (\n")
	for _, path := range paths {
		b.WriteString(fmt.Sprintf("\t%s\n", s.spec(path)))
	}
	b.WriteString(")\n\n")
	return b.String()
}

func (s *importSet) spec(path string) string {
	qualifier := s.qualifiers[path]
	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	if qualifier == base {
		return fmt.Sprintf("%q", path)
	}
	return fmt.Sprintf("%s %q", qualifier, path)
}
