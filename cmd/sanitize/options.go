package main

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/njchilds90/sanitizers"
)

// tagNamePattern matches the names the stripper can recognize in markup.
var tagNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

type applyOptions struct {
	Directive string
	Kind      string
}

func (o applyOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Directive,
			validation.Required,
			validation.In(directiveNames()...).Error("must be one of the names listed by \"sanitize directives\""),
		),
		validation.Field(&o.Kind, validation.By(knownKind)),
	)
}

// value wraps input as plain text or, with a kind, as tagged content.
func (o applyOptions) value(input string) (sanitizers.Value, error) {
	if o.Kind == "" {
		return sanitizers.String(input), nil
	}
	kind, err := sanitizers.ParseKind(o.Kind)
	if err != nil {
		return nil, err
	}
	return sanitizers.Ordain(input, kind), nil
}

type stripOptions struct {
	Allow   []string
	Nospace bool
}

func (o stripOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Allow, validation.Each(
			validation.Match(tagNamePattern).Error("must be a tag name"),
			validation.By(safeElement),
		)),
	)
}

func directiveNames() []interface{} {
	names := sanitizers.Directives()
	out := make([]interface{}, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func knownKind(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := sanitizers.ParseKind(s)
	return err
}

// safeElement rejects tags whose bodies are not parsed as markup, such as
// script and style.
func safeElement(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if sanitizers.FilterHTMLElementName(sanitizers.String(s)) == sanitizers.InnocuousOutput {
		return errors.New("cannot be allowed")
	}
	return nil
}
