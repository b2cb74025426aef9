// Package catalog implements the library catalog: a flat registry of
// function descriptors, serializable to and from ".hiolib" JSON documents.
// It never executes a function it describes, only looks up and serializes.
package catalog

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Function describes one catalog entry's function signature.
type Function struct {
	Name                   string
	Params                 []string
	ReturnType             string
	ImplementationLanguage string
}

// Entry is one library registered in a Manager.
type Entry struct {
	Name        string
	Version     string
	Description string
	Language    string
	// FunctionOrder preserves insertion order; Functions holds the payload.
	FunctionOrder []string
	Functions     map[string]Function
}

// NewEntry creates an empty Entry ready to receive functions via AddFunction.
func NewEntry(name, version, description, language string) *Entry {
	return &Entry{
		Name:        name,
		Version:     version,
		Description: description,
		Language:    language,
		Functions:   make(map[string]Function),
	}
}

// AddFunction registers fn, preserving first-insertion order for export.
func (e *Entry) AddFunction(fn Function) {
	if _, exists := e.Functions[fn.Name]; !exists {
		e.FunctionOrder = append(e.FunctionOrder, fn.Name)
	}
	e.Functions[fn.Name] = fn
}

// GetFunction looks up a function by name.
func (e *Entry) GetFunction(name string) (Function, bool) {
	fn, ok := e.Functions[name]
	return fn, ok
}

// ExportJSON renders the entry as a ".hiolib" JSON document with the
// "functions" object's keys in insertion order (sjson builds the document
// key-by-key rather than marshaling a map, since encoding/json cannot
// guarantee map key order.
func (e *Entry) ExportJSON() (string, error) {
	json := "{}"
	var err error
	if json, err = sjson.Set(json, "name", e.Name); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "version", e.Version); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "description", e.Description); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "language", e.Language); err != nil {
		return "", err
	}
	if json, err = sjson.SetRaw(json, "functions", "{}"); err != nil {
		return "", err
	}
	for _, name := range e.FunctionOrder {
		fn := e.Functions[name]
		path := fmt.Sprintf("functions.%s", name)
		if json, err = sjson.Set(json, path+".params", fn.Params); err != nil {
			return "", err
		}
		if json, err = sjson.Set(json, path+".return_type", fn.ReturnType); err != nil {
			return "", err
		}
		if json, err = sjson.Set(json, path+".implementation_language", fn.ImplementationLanguage); err != nil {
			return "", err
		}
	}
	return json, nil
}

// ParseEntry reads back an Entry from a ".hiolib" JSON document using gjson,
// without needing a fully-typed decode target.
func ParseEntry(doc string) (*Entry, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("invalid library document")
	}
	root := gjson.Parse(doc)
	e := NewEntry(
		root.Get("name").String(),
		root.Get("version").String(),
		root.Get("description").String(),
		root.Get("language").String(),
	)
	root.Get("functions").ForEach(func(key, val gjson.Result) bool {
		var params []string
		for _, p := range val.Get("params").Array() {
			params = append(params, p.String())
		}
		e.AddFunction(Function{
			Name:                   key.String(),
			Params:                 params,
			ReturnType:             val.Get("return_type").String(),
			ImplementationLanguage: val.Get("implementation_language").String(),
		})
		return true
	})
	return e, nil
}
