package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// UniqueUsername returns a username that will not collide across specs.
func UniqueUsername(prefix string) string {
	return generateRandomName(prefix)
}
