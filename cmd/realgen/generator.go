// Copyright 2025 go-real Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.go.tmpl"))

// DefaultTypes are the types package real ships.
var DefaultTypes = []string{"F32", "F64", "F32x4", "F32x8", "F64x2", "F64x4", "Vec2", "Vec3", "Vec4"}

// Template kinds.
const (
	KindScalar    = "scalar"
	KindLanes     = "lanes"
	KindComposite = "composite"
)

// maxVectorBits is the widest register a lane group may model (AVX-512).
const maxVectorBits = 512

var (
	scalarName    = regexp.MustCompile(`^F(32|64)$`)
	lanesName     = regexp.MustCompile(`^F(32|64)x([0-9]+)$`)
	compositeName = regexp.MustCompile(`^Vec([0-9]+)$`)
)

// TypeSpec holds the template fields for one generated type.
type TypeSpec struct {
	Kind    string
	Package string
	Name    string

	// Scalar and lane groups.
	Scalar string // float32 or float64
	Bits   int

	// Lane groups and composites.
	N int

	// Lane groups only.
	Mask string
	Uint string

	// Lane groups that fill a 128, 256 or 512-bit register also get an
	// archsimd file built with GOEXPERIMENT=simd on amd64.
	SIMD     bool
	Vector   string // archsimd vector type, e.g. Float32x8
	VMask    string // archsimd mask type, e.g. Mask32x8
	MaskBits string // integer type of VMask.ToBits
	Guard    string // package variable that enables the archsimd path

	// Composites only.
	Bool string
}

// ParseType derives the template fields from a type name.
func ParseType(name, pkg string) (TypeSpec, error) {
	spec := TypeSpec{Package: pkg, Name: name}
	if m := scalarName.FindStringSubmatch(name); m != nil {
		spec.Kind = KindScalar
		spec.Bits, _ = strconv.Atoi(m[1])
		spec.Scalar = "float" + m[1]
		return spec, nil
	}
	if m := lanesName.FindStringSubmatch(name); m != nil {
		spec.Kind = KindLanes
		spec.Bits, _ = strconv.Atoi(m[1])
		spec.N, _ = strconv.Atoi(m[2])
		if spec.N < 2 || spec.N&(spec.N-1) != 0 {
			return TypeSpec{}, fmt.Errorf("type %s: lane count %d is not a power of two >= 2", name, spec.N)
		}
		if spec.N*spec.Bits > maxVectorBits {
			return TypeSpec{}, fmt.Errorf("type %s: %d bits exceed a %d-bit register", name, spec.N*spec.Bits, maxVectorBits)
		}
		spec.Scalar = "float" + m[1]
		spec.Mask = fmt.Sprintf("M%sx%d", m[1], spec.N)
		spec.Uint = "uint" + m[1]
		switch width := spec.N * spec.Bits; width {
		case 128, 256, 512:
			spec.SIMD = true
			spec.Vector = fmt.Sprintf("Float%sx%d", m[1], spec.N)
			spec.VMask = fmt.Sprintf("Mask%sx%d", m[1], spec.N)
			spec.MaskBits = "uint8"
			if spec.N > 8 {
				spec.MaskBits = "uint16"
			}
			spec.Guard = "simdAVX2"
			if width == 512 {
				spec.Guard = "simdAVX512"
			}
		}
		return spec, nil
	}
	if m := compositeName.FindStringSubmatch(name); m != nil {
		spec.Kind = KindComposite
		spec.N, _ = strconv.Atoi(m[1])
		if spec.N < 2 || spec.N > 8 {
			return TypeSpec{}, fmt.Errorf("type %s: arity %d outside [2, 8]", name, spec.N)
		}
		spec.Bool = fmt.Sprintf("Bool%d", spec.N)
		return spec, nil
	}
	return TypeSpec{}, fmt.Errorf("type %s: unrecognized name", name)
}

// File is one generated output file.
type File struct {
	Template string
	Name     string
}

// Files returns the files generated for s. A lane group F32x8 yields
// lanes_f32x8_gen.go with the shared methods, lanes_f32x8_ops_gen.go with the
// per-lane routed methods and, when s.SIMD is set, lanes_f32x8_simd_gen.go
// with their archsimd versions.
func (s TypeSpec) Files() []File {
	lower := strings.ToLower(s.Name)
	switch s.Kind {
	case KindScalar:
		return []File{{"scalar.go.tmpl", "scalar_" + lower + "_gen.go"}}
	case KindLanes:
		files := []File{
			{"lanes.go.tmpl", "lanes_" + lower + "_gen.go"},
			{"lanes_ops.go.tmpl", "lanes_" + lower + "_ops_gen.go"},
		}
		if s.SIMD {
			files = append(files, File{"lanes_simd.go.tmpl", "lanes_" + lower + "_simd_gen.go"})
		}
		return files
	default:
		return []File{{"composite.go.tmpl", lower + "_gen.go"}}
	}
}

// Render executes the template of f for s and formats the result.
func Render(s TypeSpec, f File) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, f.Template, s); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Name, err)
	}
	out, err := imports.Process(f.Name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Name, err)
	}
	return out, nil
}

// Generator writes the files of every type into OutputDir.
type Generator struct {
	Types     []string
	OutputDir string
	Package   string
}

// Run parses every type name before writing anything, so a bad name leaves
// the output directory untouched.
func (g *Generator) Run() error {
	specs := make([]TypeSpec, 0, len(g.Types))
	seen := make(map[string]bool)
	for _, name := range g.Types {
		if seen[name] {
			return fmt.Errorf("type %s listed twice", name)
		}
		seen[name] = true
		spec, err := ParseType(name, g.Package)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Every output file is independent of the others.
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, spec := range specs {
		for _, f := range spec.Files() {
			eg.Go(func() error {
				src, err := Render(spec, f)
				if err != nil {
					return err
				}
				path := filepath.Join(g.OutputDir, f.Name)
				if err := os.WriteFile(path, src, 0644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				return nil
			})
		}
	}
	return eg.Wait()
}
