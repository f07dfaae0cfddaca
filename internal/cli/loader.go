package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"

	"github.com/quadrel/quadrel/internal/rdf"
)

// LoadMode controls how errors are handled during manifest loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Manifest is a parsed quad manifest: one or more named graphs, each
// holding the quadruples to merge into it.
type Manifest struct {
	Graphs []GraphSpec
}

// GraphSpec is one named graph from a manifest. Quads carry the graph
// name as their context; MergeGraph re-homes them anyway, so the two can
// never disagree.
type GraphSpec struct {
	Name  string
	Quads []rdf.Quad
}

// QuadCount returns the total number of quadruples across all graphs.
func (m *Manifest) QuadCount() int {
	n := 0
	for _, g := range m.Graphs {
		n += len(g.Quads)
	}
	return n
}

// LoadError represents an error that occurred during manifest loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNoGraphs    = "E003" // Manifest defines no graphs
	ErrCodeLoadFailed  = "E004" // CUE parse/build failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeStoreFailed = "E006" // Store open/operation failed

	// Quad validation errors
	ErrCodeMissingSubject   = "E101" // Quad has no subject
	ErrCodeMissingPredicate = "E102" // Quad has no predicate
	ErrCodeMissingObject    = "E103" // Quad has neither object nor literal
	ErrCodeBothObjectKinds  = "E104" // Quad has both object and literal
	ErrCodeInvalidTerm      = "E105" // Term rejected by the term model
)

// LoadManifest loads a quad manifest written in CUE. The expected shape:
//
//	graph: "urn:example:g1": [
//		{subject: "urn:a", predicate: "urn:b", object: "urn:c"},
//		{subject: "urn:a", predicate: "urn:label", literal: "Alice"},
//	]
//
// Each quad binds subject and predicate plus exactly one of object
// (resource) or literal. Malformed quads are reported with their CUE
// source position.
func LoadManifest(path string, mode LoadMode) (*Manifest, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading manifest: %v", err)}}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	graphsVal := value.LookupPath(cue.ParsePath("graph"))
	if !graphsVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeNoGraphs, Message: "manifest defines no graph field"}}
	}

	iter, err := graphsVal.Fields()
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("iterating graphs: %v", err), Pos: graphsVal.Pos()}}
	}

	manifest := &Manifest{}
	var errs []error
	for iter.Next() {
		graph := GraphSpec{Name: iter.Label()}

		quads, quadErrs := loadGraphQuads(iter.Value(), graph.Name, mode)
		errs = append(errs, quadErrs...)
		if mode == LoadModeFailFast && len(errs) > 0 {
			return manifest, errs
		}

		graph.Quads = quads
		manifest.Graphs = append(manifest.Graphs, graph)
	}

	if len(manifest.Graphs) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeNoGraphs, Message: "manifest defines no graphs"})
	}

	return manifest, errs
}

// loadGraphQuads decodes the quad list of one graph.
func loadGraphQuads(v cue.Value, graphName string, mode LoadMode) ([]rdf.Quad, []error) {
	var errs []error

	list, err := v.List()
	if err != nil {
		return nil, []error{&LoadError{
			Code:    ErrCodeLoadFailed,
			Message: fmt.Sprintf("graph %q is not a list of quads: %v", graphName, err),
			Pos:     v.Pos(),
		}}
	}

	var quads []rdf.Quad
	for list.Next() {
		quad, quadErr := loadQuad(list.Value(), graphName)
		if quadErr != nil {
			errs = append(errs, quadErr)
			if mode == LoadModeFailFast {
				return quads, errs
			}
			continue
		}
		quads = append(quads, quad)
	}

	return quads, errs
}

// loadQuad decodes a single quad struct, enforcing the object/literal
// exclusivity contract at load time so the store never sees a malformed
// quad.
func loadQuad(v cue.Value, graphName string) (rdf.Quad, *LoadError) {
	subject, ok := stringField(v, "subject")
	if !ok {
		return rdf.Quad{}, &LoadError{Code: ErrCodeMissingSubject, Message: "quad has no subject", Pos: v.Pos()}
	}
	predicate, ok := stringField(v, "predicate")
	if !ok {
		return rdf.Quad{}, &LoadError{Code: ErrCodeMissingPredicate, Message: "quad has no predicate", Pos: v.Pos()}
	}

	object, hasObject := stringField(v, "object")
	literal, hasLiteral := stringField(v, "literal")

	switch {
	case hasObject && hasLiteral:
		return rdf.Quad{}, &LoadError{Code: ErrCodeBothObjectKinds, Message: "quad binds both object and literal", Pos: v.Pos()}
	case !hasObject && !hasLiteral:
		return rdf.Quad{}, &LoadError{Code: ErrCodeMissingObject, Message: "quad binds neither object nor literal", Pos: v.Pos()}
	}

	flavor := rdf.ResourceObject
	value := object
	if hasLiteral {
		flavor = rdf.LiteralObject
		value = literal
	}

	quad, err := rdf.NewQuad(graphName, subject, predicate, value, flavor)
	if err != nil {
		return rdf.Quad{}, &LoadError{Code: ErrCodeInvalidTerm, Message: err.Error(), Pos: v.Pos()}
	}
	return quad, nil
}

// stringField reads an optional string field from a CUE struct value.
func stringField(v cue.Value, name string) (string, bool) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return "", false
	}
	s, err := f.String()
	if err != nil {
		return "", false
	}
	return s, true
}
