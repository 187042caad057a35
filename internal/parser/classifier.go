package parser

import "github.com/toyz/injectgen/internal/models"

// ClassifyShape maps a field's declared type onto its collection shape. The
// classification is total: anything that is not a recognized collection form
// is a scalar, resolved as a single service. Maps, channels and opaque
// shapes therefore fall back to scalar resolution rather than failing.
func ClassifyShape(ref *models.TypeRef) models.Shape {
	switch ref.Kind {
	case models.ArrayRef:
		return models.Shape{
			Collection:      true,
			Elem:            ref.Elem,
			Materialization: models.MaterializeFixedArray,
		}
	case models.SeqRef:
		return models.Shape{
			Collection:      true,
			Elem:            ref.Elem,
			Materialization: models.MaterializeNone,
		}
	case models.SliceRef:
		return models.Shape{
			Collection:      true,
			Elem:            ref.Elem,
			Materialization: models.MaterializeGrowableList,
		}
	default:
		return models.Scalar
	}
}
