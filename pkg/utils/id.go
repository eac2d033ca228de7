package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a random lowercase alphanumeric ID of the given length.
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
