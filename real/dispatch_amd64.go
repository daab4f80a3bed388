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

//go:build amd64 && !goexperiment.simd

package real

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the lane groups run as per-lane loops; detection
// still reports the level and decides whether MulAdd is fused.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
	if NoFMAEnv() {
		useFMA = false
	}
}

func detectCPUFeatures() {
	// SSE2 is part of the amd64 baseline.
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"

	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	}
	if cpu.X86.HasAVX512F {
		currentLevel = DispatchAVX512
		currentWidth = 32 // F32xN models 256-bit registers
		currentName = "avx512"
	}
	useFMA = cpu.X86.HasFMA
}
