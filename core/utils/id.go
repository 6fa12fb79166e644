package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short random id for records that live inside a JSON
// document (free slots, occupied slots) and for queue task ids.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		return ""
	}
	return id
}

// GeneratePrefixedID returns GenerateID with a type prefix, e.g. "fs_3kT9...".
func GeneratePrefixedID(prefix string) string {
	return prefix + "_" + GenerateID()
}
