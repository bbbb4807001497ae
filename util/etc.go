package util

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	ShredingCount = 10
)

// Digest is the hex encoded BLAKE2b-256 sum of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

/*
 * ReadFiles lists the files of folder having one of the extensions
 * (without dot, case insensitive). Subfolders are not visited.
 */
func ReadFiles(folder string, supportedExtensions []string) ([]string, error) {
	allFiles, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		for _, ext := range supportedExtensions {
			if strings.HasSuffix(name, "."+strings.ToLower(ext)) {
				result = append(result, filepath.Join(folder, f.Name()))
				break
			}
		}
	}
	sort.Strings(result)
	return result, nil
}

// ShredFile overwrites the file with random bytes a few times and removes it.
func ShredFile(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return err
	}

	buf := make([]byte, fileInfo.Size())
	for i := 0; i < ShredingCount; i++ {
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		if err = os.WriteFile(filename, buf, 0600); err != nil {
			return err
		}
	}
	return os.Remove(filename)
}
