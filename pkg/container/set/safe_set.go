/*
 *     Copyright 2024 The Pantry Peeper Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package set

import "sync"

type SafeSet[T comparable] interface {
	Values() []T
	Add(T) bool
	Delete(T)
	Contains(...T) bool
	Len() uint
	Range(func(T) bool)
	Clear()
}

type safeSet[T comparable] struct {
	mu   *sync.RWMutex
	data map[T]struct{}
}

func NewSafeSet[T comparable]() SafeSet[T] {
	return &safeSet[T]{
		mu:   &sync.RWMutex{},
		data: map[T]struct{}{},
	}
}

func (s *safeSet[T]) Values() []T {
	var result []T
	s.Range(func(v T) bool {
		result = append(result, v)
		return true
	})

	return result
}

func (s *safeSet[T]) Add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.data[v]
	if found {
		return false
	}

	s.data[v] = struct{}{}
	return true
}

func (s *safeSet[T]) Delete(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, v)
}

func (s *safeSet[T]) Contains(vals ...T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range vals {
		if _, ok := s.data[v]; !ok {
			return false
		}
	}

	return true
}

func (s *safeSet[T]) Len() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint(len(s.data))
}

func (s *safeSet[T]) Range(fn func(T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for v := range s.data {
		if !fn(v) {
			break
		}
	}
}

func (s *safeSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = map[T]struct{}{}
}
