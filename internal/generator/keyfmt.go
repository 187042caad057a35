package generator

import (
	"strconv"

	"github.com/toyz/injectgen/internal/models"
)

// formatKey renders a resolution key as the Go literal passed to the keyed
// provider lookups. Unsupported key literals render as the runtime sentinel
// so the generated file still compiles and the lookup misses predictably.
func formatKey(key models.KeyValue, runtimeQualifier string) string {
	switch key.Kind {
	case models.KeyString:
		return strconv.Quote(key.Str)
	case models.KeyBool:
		return strconv.FormatBool(key.Bool)
	case models.KeyInt:
		return strconv.FormatInt(key.Int, 10)
	case models.KeyFloat:
		return strconv.FormatFloat(key.Float, 'g', -1, 64)
	case models.KeyRune:
		return strconv.QuoteRune(key.Rune)
	case models.KeyNil:
		return "nil"
	case models.KeyUnsupported:
		return runtimeQualifier + ".UnsupportedKey"
	default:
		return "nil"
	}
}
