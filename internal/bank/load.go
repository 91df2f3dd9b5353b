package bank

import (
	"fmt"
	"io"
	"os"
)

// Load reads and parses a bank document from a file, or from stdin when
// path is "-".
func Load(path string) (Bank, error) {
	data, err := readSource(path, os.Stdin)
	if err != nil {
		return Bank{}, err
	}
	return Parse(data)
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read bank from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return data, nil
}
