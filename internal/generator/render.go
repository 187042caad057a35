package generator

import "github.com/toyz/injectgen/internal/models"

// renderType renders a resolved type reference as it must appear in the
// generated file, registering every named package on the import set. Opaque
// references render their captured source text verbatim.
func renderType(ref *models.TypeRef, imports *importSet) string {
	switch ref.Kind {
	case models.NamedRef:
		if ref.PkgPath == "" || ref.PkgPath == imports.currentPkg {
			return ref.Name
		}
		return imports.qualify(ref.PkgPath) + "." + ref.Name
	case models.PointerRef:
		return "*" + renderType(ref.Elem, imports)
	case models.SliceRef:
		return "[]" + renderType(ref.Elem, imports)
	case models.ArrayRef:
		return "[" + ref.Len + "]" + renderType(ref.Elem, imports)
	case models.MapRef:
		return "map[" + renderType(ref.Key, imports) + "]" + renderType(ref.Elem, imports)
	case models.ChanRef:
		return "chan " + renderType(ref.Elem, imports)
	case models.SeqRef:
		return imports.qualify("iter") + ".Seq[" + renderType(ref.Elem, imports) + "]"
	case models.OpaqueRef:
		return ref.Raw
	default:
		return ref.Raw
	}
}
