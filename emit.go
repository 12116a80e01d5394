package main

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"
	"text/template"

	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

// harnessName is the entry point the generated tests call; its error result
// is what each test asserts on. The emitter only ever names it in generated
// text, it never invokes it.
const harnessName = "run_fuzz_test"

// emitter renders one regression-test block per crash artifact.
type emitter struct {
	Harness string // function name the generated test calls

	testcaseTemplate *template.Template
}

// testcase carries everything the template needs for one artifact.
type testcase struct {
	ID      string
	Literal string
	Harness string
}

func (e *emitter) loadTemplates() error {
	archive := txtar.Parse([]byte(defaultTemplates))
	templates := make(map[string]string)
	for _, file := range archive.Files {
		templates[file.Name] = string(file.Data)
	}

	tmpl, ok := templates["testcase.tmpl"]
	if !ok {
		return fmt.Errorf("embedded template archive is missing testcase.tmpl")
	}

	t, err := template.New("testcase").Parse(tmpl)
	if err != nil {
		return err
	}
	e.testcaseTemplate = t
	return nil
}

// testcaseID returns the stable name fragment for an artifact: the first 16
// hex characters of its SHA-256 digest. Content-derived, so regenerating the
// suite from an unchanged corpus yields identically-named tests.
func testcaseID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// emit renders the regression-test block for one artifact and writes it to w.
// The block carries its own leading and trailing blank lines, so consecutive
// blocks concatenate into well-formed output.
func (e *emitter) emit(w io.Writer, data []byte) error {
	if e.testcaseTemplate == nil {
		if err := e.loadTemplates(); err != nil {
			return err
		}
	}

	return e.testcaseTemplate.Execute(w, testcase{
		ID:      testcaseID(data),
		Literal: escapeBytes(data),
		Harness: e.Harness,
	})
}
