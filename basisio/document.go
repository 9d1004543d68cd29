// SPDX-License-Identifier: MIT
// Package basisio - structured (JSON / YAML) encodings.

package basisio

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lattice/matrix"
)

const (
	opReadJSON  = "ReadJSON"
	opWriteJSON = "WriteJSON"
	opReadYAML  = "ReadYAML"
	opWriteYAML = "WriteYAML"
)

// Document is the structured form of a basis. Rows and Cols are redundant
// with Basis and are cross-checked on decode.
type Document struct {
	Rows  int         `json:"rows" yaml:"rows"`
	Cols  int         `json:"cols" yaml:"cols"`
	Basis [][]float64 `json:"basis" yaml:"basis,flow"`
}

// NewDocument snapshots m into a Document.
func NewDocument(m *matrix.Dense) (Document, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Document{}, err
	}

	return Document{Rows: m.Rows(), Cols: m.Cols(), Basis: m.ToRows()}, nil
}

// Dense validates the declared shape against the rows and builds the matrix.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrNaNInf.
func (d Document) Dense() (*matrix.Dense, error) {
	if d.Rows <= 0 || d.Cols <= 0 {
		return nil, fmt.Errorf("declared %dx%d: %w", d.Rows, d.Cols, matrix.ErrInvalidDimensions)
	}

	return matrix.New(d.Rows, d.Cols, matrix.FromRows(d.Basis))
}

// ReadJSON decodes a Document; unknown fields are rejected.
func ReadJSON(r io.Reader) (*matrix.Dense, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, ioErrorf(opReadJSON, "", fmt.Errorf("%v: %w", err, matrix.ErrParse))
	}
	m, err := d.Dense()
	if err != nil {
		return nil, ioErrorf(opReadJSON, "", err)
	}

	return m, nil
}

// WriteJSON encodes m as an indented Document.
func WriteJSON(w io.Writer, m *matrix.Dense) error {
	d, err := NewDocument(m)
	if err != nil {
		return ioErrorf(opWriteJSON, "", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(d); err != nil {
		return ioErrorf(opWriteJSON, "", err)
	}

	return nil
}

// ReadYAML decodes a Document in strict mode (unknown keys are errors).
func ReadYAML(r io.Reader) (*matrix.Dense, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, ioErrorf(opReadYAML, "", fmt.Errorf("%v: %w", err, matrix.ErrParse))
	}
	m, err := d.Dense()
	if err != nil {
		return nil, ioErrorf(opReadYAML, "", err)
	}

	return m, nil
}

// WriteYAML encodes m as a Document with the basis in flow style.
func WriteYAML(w io.Writer, m *matrix.Dense) error {
	d, err := NewDocument(m)
	if err != nil {
		return ioErrorf(opWriteYAML, "", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(d); err != nil {
		return ioErrorf(opWriteYAML, "", err)
	}
	if err = enc.Close(); err != nil {
		return ioErrorf(opWriteYAML, "", err)
	}

	return nil
}
