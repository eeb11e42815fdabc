package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// CalculateChecksum returns a sha256 digest of content in the canonical
// "sha256:<hex>" form used throughout stitch for change detection.
func CalculateChecksum(content []byte) string {
	sum := sha256.Sum256(content)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// CalculateFileChecksum reads a file and returns its canonical digest.
func CalculateFileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return CalculateChecksum(data), nil
}
