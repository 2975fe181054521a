package introspection

import (
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

var kindMap = map[TypeKind]ast.DefinitionKind{
	TypeKindScalar:      ast.Scalar,
	TypeKindObject:      ast.Object,
	TypeKindInterface:   ast.Interface,
	TypeKindUnion:       ast.Union,
	TypeKindEnum:        ast.Enum,
	TypeKindInputObject: ast.InputObject,
}

// SchemaFromIntrospection converts an introspection result into an
// *ast.SchemaDocument ready for validator.ValidateSchemaDocument. Types of
// the introspection system itself ("__"-prefixed) are dropped; everything
// else, built-in scalars and directives included, is carried over so the
// document is self-contained.
func SchemaFromIntrospection(source string, data Data) *ast.SchemaDocument {
	b := &schemaBuilder{
		pos:        &ast.Position{Src: &ast.Source{Name: source}},
		doc:        &ast.SchemaDocument{},
		directives: make(map[string]bool),
	}

	for _, directive := range data.Schema.Directives {
		b.directives[directive.Name] = true
	}

	b.buildSchemaDefinition(data.Schema)

	for _, typ := range data.Schema.Types {
		if typ.Name == nil || typ.Internal() {
			continue
		}
		b.buildTypeDefinition(typ)
	}

	for _, directive := range data.Schema.Directives {
		b.buildDirectiveDefinition(directive)
	}

	return b.doc
}

type schemaBuilder struct {
	pos        *ast.Position
	doc        *ast.SchemaDocument
	directives map[string]bool
}

func (b *schemaBuilder) buildSchemaDefinition(schema Schema) {
	def := &ast.SchemaDefinition{Position: b.pos}
	if schema.QueryType != nil && schema.QueryType.Name != nil {
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Query,
			Type:      *schema.QueryType.Name,
			Position:  b.pos,
		})
	}
	if schema.MutationType != nil && schema.MutationType.Name != nil {
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Mutation,
			Type:      *schema.MutationType.Name,
			Position:  b.pos,
		})
	}
	if schema.SubscriptionType != nil && schema.SubscriptionType.Name != nil {
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: ast.Subscription,
			Type:      *schema.SubscriptionType.Name,
			Position:  b.pos,
		})
	}

	if len(def.OperationTypes) > 0 {
		b.doc.Schema = append(b.doc.Schema, def)
	}
}

func (b *schemaBuilder) buildTypeDefinition(typ *FullType) {
	kind, ok := kindMap[typ.Kind]
	if !ok {
		return
	}

	def := &ast.Definition{
		Kind:        kind,
		Name:        *typ.Name,
		Description: deref(typ.Description),
		Position:    b.pos,
	}

	for _, iface := range typ.Interfaces {
		if iface.Name != nil {
			def.Interfaces = append(def.Interfaces, *iface.Name)
		}
	}

	for _, field := range typ.Fields {
		def.Fields = append(def.Fields, b.buildFieldDefinition(field))
	}

	// input objects carry their fields in inputFields
	for _, input := range typ.InputFields {
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name:         input.Name,
			Description:  deref(input.Description),
			Type:         input.Type.Type(),
			DefaultValue: b.buildValue(input.DefaultValue),
			Position:     b.pos,
		})
	}

	for _, possible := range typ.PossibleTypes {
		if possible.Name != nil {
			def.Types = append(def.Types, *possible.Name)
		}
	}

	for _, enum := range typ.EnumValues {
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        enum.Name,
			Description: deref(enum.Description),
			Directives:  b.deprecated(enum.IsDeprecated, enum.DeprecationReason),
			Position:    b.pos,
		})
	}

	b.doc.Definitions = append(b.doc.Definitions, def)
}

func (b *schemaBuilder) buildFieldDefinition(field *FieldValue) *ast.FieldDefinition {
	return &ast.FieldDefinition{
		Name:        field.Name,
		Description: deref(field.Description),
		Arguments:   b.buildArguments(field.Args),
		Type:        field.Type.Type(),
		Directives:  b.deprecated(field.IsDeprecated, field.DeprecationReason),
		Position:    b.pos,
	}
}

func (b *schemaBuilder) buildDirectiveDefinition(directive *Directive) {
	def := &ast.DirectiveDefinition{
		Name:        directive.Name,
		Description: deref(directive.Description),
		Arguments:   b.buildArguments(directive.Args),
		Position:    b.pos,
	}
	for _, location := range directive.Locations {
		def.Locations = append(def.Locations, ast.DirectiveLocation(location))
	}

	b.doc.Directives = append(b.doc.Directives, def)
}

func (b *schemaBuilder) buildArguments(args []*InputValue) ast.ArgumentDefinitionList {
	var list ast.ArgumentDefinitionList
	for _, arg := range args {
		list = append(list, &ast.ArgumentDefinition{
			Name:         arg.Name,
			Description:  deref(arg.Description),
			Type:         arg.Type.Type(),
			DefaultValue: b.buildValue(arg.DefaultValue),
			Position:     b.pos,
		})
	}

	return list
}

// deprecated builds the @deprecated directive list for a field or enum
// value. Skipped when the server did not declare the directive, since the
// validator rejects undefined directives.
func (b *schemaBuilder) deprecated(isDeprecated bool, reason *string) ast.DirectiveList {
	if !isDeprecated || !b.directives["deprecated"] {
		return nil
	}

	directive := &ast.Directive{Name: "deprecated", Position: b.pos}
	if reason != nil && *reason != "" {
		directive.Arguments = ast.ArgumentList{{
			Name:     "reason",
			Value:    &ast.Value{Raw: *reason, Kind: ast.StringValue, Position: b.pos},
			Position: b.pos,
		}}
	}

	return ast.DirectiveList{directive}
}

// buildValue maps an introspected default value, which arrives as a GraphQL
// literal string, onto an ast.Value. Lists, objects and enum literals are
// classified as EnumValue so the formatter reproduces them verbatim.
func (b *schemaBuilder) buildValue(raw *string) *ast.Value {
	if raw == nil {
		return nil
	}

	value := &ast.Value{Raw: *raw, Position: b.pos}
	s := *raw
	switch {
	case s == "null":
		value.Kind = ast.NullValue
	case s == "true" || s == "false":
		value.Kind = ast.BooleanValue
	case strings.HasPrefix(s, `"`):
		if unquoted, err := strconv.Unquote(s); err == nil {
			value.Raw = unquoted
		}
		value.Kind = ast.StringValue
	default:
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			value.Kind = ast.IntValue
		} else if _, err := strconv.ParseFloat(s, 64); err == nil {
			value.Kind = ast.FloatValue
		} else {
			value.Kind = ast.EnumValue
		}
	}

	return value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
