// Package input reads lists of deep links from files or stdin.
package input

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/spf13/afero"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ReadLinks returns the links listed in path, one per line. Blank lines and
// lines starting with # are skipped. When path is Stdin the links are read
// from stdin instead.
func ReadLinks(fs afero.Fs, path string, stdin io.Reader) ([]string, error) {
	if path == Stdin {
		if stdin == nil {
			return nil, errors.New(errors.ErrInvalidInput, "no standard input available")
		}
		return scanLinks(stdin, "<stdin>")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "link file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read link file %s", path).
			WithDetail("path", path)
	}
	return scanLinks(bytes.NewReader(data), path)
}

func scanLinks(r io.Reader, name string) ([]string, error) {
	var links []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read links from %s", name)
	}
	return links, nil
}
