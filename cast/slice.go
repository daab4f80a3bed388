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

package cast

// ToSlice converts every element of src with To. It returns nil and false if
// any element does not convert.
func ToSlice[T, S Number](src []S) ([]T, bool) {
	dst := make([]T, len(src))
	for i, v := range src {
		t, ok := To[T](v)
		if !ok {
			return nil, false
		}
		dst[i] = t
	}
	return dst, true
}

// TrySlice is ToSlice with the first failing element reported as a
// *RangeError.
func TrySlice[T, S Number](src []S) ([]T, error) {
	dst := make([]T, len(src))
	for i, v := range src {
		t, err := Try[T](v)
		if err != nil {
			return nil, err
		}
		dst[i] = t
	}
	return dst, nil
}

// ClampingSlice converts min(len(dst), len(src)) elements of src into dst
// with Clamping and returns the number converted.
func ClampingSlice[T, S Number](dst []T, src []S) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Clamping[T](src[i])
	}
	return n
}

// ClampedSlice converts min(len(dst), len(src)) elements of src into dst
// with Clamped against r and returns the number converted.
func ClampedSlice[T, S Number](dst []T, src []S, r Range[T]) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Clamped(src[i], r)
	}
	return n
}
