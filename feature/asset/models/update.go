package models

import (
	"bytes"
	"reflect"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.mongodb.org/mongo-driver/bson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Update is a sparse set of field overwrites keyed by wire name.
// Values are string or []string, already validated.
type Update map[string]any

type updatableField struct {
	typ  reflect.Type
	rule string
}

// updatable is derived from Fields so the two never drift apart.
var updatable = func() map[string]updatableField {
	t := reflect.TypeOf(Fields{})
	out := make(map[string]updatableField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		typ := f.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		rule := strings.TrimPrefix(f.Tag.Get("validate"), "omitempty")
		rule = strings.TrimPrefix(rule, ",")
		out[name] = updatableField{typ: typ, rule: rule}
	}
	return out
}()

// ParseUpdate decodes a JSON object into an Update.
// Unknown keys and wrongly typed or invalid values are rejected; null values
// are dropped, so an object of nulls yields an empty Update.
func ParseUpdate(body []byte) (Update, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ValidationError{Message: "request body must be a JSON object"}
	}

	u := make(Update, len(raw))
	ve := &ValidationError{}
	for name, value := range raw {
		field, ok := updatable[name]
		if !ok {
			ve.add(name, "unknown")
			continue
		}
		// json-iterator leaves the raw message empty for a null value.
		if v := bytes.TrimSpace(value); len(v) == 0 || bytes.Equal(v, []byte("null")) {
			continue
		}

		target := reflect.New(field.typ)
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			ve.add(name, "type")
			continue
		}
		v := target.Elem().Interface()
		if field.rule != "" {
			if err := validate.Var(v, field.rule); err != nil {
				ve.add(name, ruleOf(err, field.rule))
				continue
			}
		}
		u[name] = v
	}

	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return u, nil
}

// Names returns the keys of the update, sorted.
func (u Update) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDocument renders the update as a MongoDB $set document.
func (u Update) SetDocument() bson.M {
	set := make(bson.M, len(u))
	for k, v := range u {
		set[k] = v
	}
	return bson.M{"$set": set}
}
