package domain

// Editable profile field names, as the backend spells them.
const (
	FieldNombre = "nombre"
	FieldGrupo  = "grupo"
	FieldCurso  = "curso"
	FieldNIU    = "niu"
)

// PerfilFields lists the editable fields in form order. Classification lists
// from the backend are applied in this order so notifications come out stable.
var PerfilFields = []string{FieldNombre, FieldGrupo, FieldCurso, FieldNIU}

var fieldLabels = map[string]string{
	FieldNombre: "Nombre",
	FieldGrupo:  "Grupo",
	FieldCurso:  "Curso",
	FieldNIU:    "NIU",
}

// FieldLabel returns the human-readable label for a profile field. Unknown
// field names come back unchanged so backend additions still render something.
func FieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Perfil is the user profile as the backend owns it. All four fields are
// editable; missing values are empty strings, never absent.
type Perfil struct {
	Nombre string `json:"nombre"`
	Grupo  string `json:"grupo"`
	Curso  string `json:"curso"`
	NIU    string `json:"niu"`
}

// Classification of one submitted field after a save. A field gets at most one
// classification per save; an unclassified field is unchanged.
type Classification string

const (
	// ClassApplied means the backend accepted and changed the field
	// immediately.
	ClassApplied Classification = "applied"
	// ClassPending means the backend recorded the change but holds it for
	// administrative approval.
	ClassPending Classification = "pending_approval"
)
