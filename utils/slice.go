// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func Any[T any](s []T, f func(T) bool) bool {
	for _, v := range s {
		if f(v) {
			return true
		}
	}
	return false
}

func Flat[T any](s [][]T) []T {
	res := make([]T, 0)
	for _, subslice := range s {
		res = append(res, subslice...)
	}
	return res
}

type CompareResult[T any] struct {
	OnlyInA []T
	OnlyInB []T
	InBoth  []T
}

// CompareSlices diffs two slices by a serializable key. Elements reported in
// InBoth are taken from A.
func CompareSlices[T any, K comparable](a, b []T, serializer func(T) K) CompareResult[T] {
	res := CompareResult[T]{}
	inA := make(map[K]T)
	inB := make(map[K]T)

	for _, v := range b {
		inB[serializer(v)] = v
	}

	for _, v := range a {
		inA[serializer(v)] = v

		if _, ok := inB[serializer(v)]; ok {
			res.InBoth = append(res.InBoth, v)
		} else {
			res.OnlyInA = append(res.OnlyInA, v)
		}
	}

	for _, v := range b {
		if _, ok := inA[serializer(v)]; !ok {
			res.OnlyInB = append(res.OnlyInB, v)
		}
	}

	return res
}

func UniqBy[T any, K comparable](s []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(s))
	res := make([]T, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return res
}
