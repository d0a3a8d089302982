// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package test holds fixtures shared by the radix tests.
package test

import (
	"bufio"
	"bytes"
	"os"

	"github.com/google/uuid"
)

// LoadTestFile returns the non-empty lines of the file at path as keys.
// It panics if the file cannot be read.
func LoadTestFile(path string) [][]byte {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't open " + path + ": " + err.Error())
	}

	var words [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := bytes.TrimSpace(scanner.Bytes()); len(line) > 0 {
			words = append(words, bytes.Clone(line))
		}
	}
	return words
}

// UUIDs returns n distinct random UUIDs in their canonical text form.
func UUIDs(n int) [][]byte {
	seen := make(map[uuid.UUID]struct{}, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		id := uuid.New()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, []byte(id.String()))
	}
	return keys
}
