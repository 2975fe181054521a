package introspection

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

// Data is the `data` object of an introspection response.
type Data struct {
	Schema Schema `json:"__schema"`
}

type Schema struct {
	QueryType        *NamedType   `json:"queryType"`
	MutationType     *NamedType   `json:"mutationType"`
	SubscriptionType *NamedType   `json:"subscriptionType"`
	Types            FullTypes    `json:"types"`
	Directives       []*Directive `json:"directives"`
}

type NamedType struct {
	Name *string `json:"name"`
}

type FullTypes []*FullType

func (fs FullTypes) NameMap() map[string]*FullType {
	typeMap := make(map[string]*FullType)
	for _, typ := range fs {
		if typ.Name == nil {
			continue
		}
		typeMap[*typ.Name] = typ
	}

	return typeMap
}

type FullType struct {
	Kind          TypeKind      `json:"kind"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Fields        []*FieldValue `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

// Internal reports whether the type belongs to the introspection system
// itself (a name starting with "__").
func (f *FullType) Internal() bool {
	return f.Name != nil && strings.HasPrefix(*f.Name, "__")
}

type FieldValue struct {
	Type              TypeRef       `json:"type"`
	Description       *string       `json:"description"`
	DeprecationReason *string       `json:"deprecationReason"`
	Name              string        `json:"name"`
	Args              []*InputValue `json:"args"`
	IsDeprecated      bool          `json:"isDeprecated"`
}

type EnumValue struct {
	Description       *string `json:"description"`
	DeprecationReason *string `json:"deprecationReason"`
	Name              string  `json:"name"`
	IsDeprecated      bool    `json:"isDeprecated"`
}

type InputValue struct {
	Type         TypeRef `json:"type"`
	Description  *string `json:"description"`
	DefaultValue *string `json:"defaultValue"`
	Name         string  `json:"name"`
}

type TypeRef struct {
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
	Kind   TypeKind `json:"kind"`
}

// Type unwraps the LIST/NON_NULL chain into an ast.Type.
func (t *TypeRef) Type() *ast.Type {
	if t.OfType == nil {
		typ := &ast.Type{}
		if t.Name != nil {
			typ.NamedType = *t.Name
		}

		return typ
	}

	switch t.Kind {
	case TypeKindNonNull:
		typ := t.OfType.Type()
		typ.NonNull = true

		return typ
	case TypeKindList:
		return &ast.Type{Elem: t.OfType.Type()}
	default:
		// a wrapping kind the server should not produce; fall back to the
		// inner type rather than failing the whole render
		return t.OfType.Type()
	}
}

// String renders the type reference in SDL notation, e.g. "[String!]!".
func (t *TypeRef) String() string {
	return t.Type().String()
}

type Directive struct {
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Locations   []string      `json:"locations"`
	Args        []*InputValue `json:"args"`
}
