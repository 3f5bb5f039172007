// Package validation checks request payloads against the accepted schemas and
// returns typed values holding only the declared fields.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tunedeck/tunedeck/internal/domain"
)

var (
	lettersPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	cuidPattern    = regexp.MustCompile(`(?i)^c[^\s-]{8,}$`)
)

// Result is the outcome of Validate. Data holds a pointer to the typed input on success.
type Result struct {
	OK     bool                `json:"ok"`
	Data   any                 `json:"data,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cuid", func(fl validator.FieldLevel) bool {
		return IsCUID(fl.Field().String())
	})
	return &Validator{validate: v}
}

// IsCUID reports whether id has the shape of a collision-resistant id.
func IsCUID(id string) bool {
	return cuidPattern.MatchString(id)
}

// Validate decodes raw as the schema named by kind. It never returns an error;
// failures are reported through Result.Errors.
func (v *Validator) Validate(kind Kind, raw []byte) Result {
	var (
		data any
		err  error
	)
	switch kind {
	case KindRegister:
		data, err = Decode[RegisterInput](v, raw)
	case KindLogin:
		data, err = Decode[LoginInput](v, raw)
	case KindPlaylist:
		data, err = Decode[PlaylistInput](v, raw)
	case KindPlaylistUpdate:
		data, err = Decode[PlaylistUpdateInput](v, raw)
	case KindTrack:
		data, err = Decode[TrackInput](v, raw)
	case KindAlbum:
		data, err = Decode[AlbumInput](v, raw)
	case KindGenre:
		data, err = Decode[GenreInput](v, raw)
	default:
		return Result{Errors: map[string][]string{"": {"unknown schema " + string(kind)}}}
	}

	if err != nil {
		return Result{Errors: fieldsOf(err)}
	}
	return Result{OK: true, Data: data}
}

func fieldsOf(err error) map[string][]string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return map[string][]string{"": {err.Error()}}
}

// Decode parses raw into T and checks it. A body that is not a single JSON
// value yields domain.MalformedRequestError; schema violations yield
// *domain.ValidationError. Object keys must match the declared names exactly,
// anything else is dropped.
func Decode[T any](v *Validator, raw []byte) (*T, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var body json.RawMessage
	if err := dec.Decode(&body); err != nil {
		return nil, domain.MalformedRequestError{Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.MalformedRequestError{Cause: errTrailingData}
	}

	var out T
	body, err := declaredOnly(body, reflect.TypeOf(out))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr := &domain.ValidationError{}
			verr.Add(fieldName(typeErr.Field), "Expected "+typeErr.Value+" to be "+typeName(typeErr.Type))
			return nil, verr
		}
		return nil, domain.MalformedRequestError{Cause: err}
	}

	if err := v.Struct(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

var errTrailingData = errors.New("unexpected data after JSON value")

// declaredOnly strips object keys that are not exactly a json name of t.
// encoding/json would otherwise match them case-insensitively.
func declaredOnly(body json.RawMessage, t reflect.Type) (json.RawMessage, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '{' {
		return body, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, domain.MalformedRequestError{Cause: err}
	}

	names := jsonNames(t)
	for key := range fields {
		if _, ok := names[key]; !ok {
			delete(fields, key)
		}
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, domain.MalformedRequestError{Cause: err}
	}
	return out, nil
}

func jsonNames(t reflect.Type) map[string]struct{} {
	names := map[string]struct{}{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// Struct checks an already decoded value.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		field := fieldName(fe.Namespace())
		verr.Add(field, message(field, fe.Tag()))
	}
	return verr
}

// fieldName turns "PlaylistInput.trackIds[2]" into "trackIds".
func fieldName(namespace string) string {
	if namespace == "" {
		return ""
	}
	if i := strings.Index(namespace, "."); i >= 0 && strings.ToUpper(namespace[:1]) == namespace[:1] {
		namespace = namespace[i+1:]
	}
	if i := strings.IndexAny(namespace, ".["); i >= 0 {
		namespace = namespace[:i]
	}
	return namespace
}

func message(field, tag string) string {
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	if m, ok := messages[tag]; ok {
		return m
	}
	return "Invalid value"
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "integer"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "array"
	default:
		return t.String()
	}
}
