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

// Command realgen generates the per-type Real implementations of package real.
//
// Usage:
//
//	realgen -types F32,F64,F32x4,Vec3 -output . -pkg real
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/realgen -types F32,F64 -output .
//
// Type names select the template:
//   - F32, F64: scalar over float32 or float64
//   - F32xN, F64xN: lane group of N lanes with mask M32xN or M64xN
//   - VecN: composite of N elements with comparison type BoolN
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	types     = flag.String("types", strings.Join(DefaultTypes, ","), "Comma-separated type names to generate")
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	pkg       = flag.String("pkg", "real", "Output package name")
)

func main() {
	flag.Parse()

	typeList := parseTypes(*types)
	if len(typeList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no types specified\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Types:     typeList,
		OutputDir: *outputDir,
		Package:   *pkg,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated: %s\n", strings.Join(typeList, ", "))
}

func parseTypes(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
