package region

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Normalize reduces one file to its code lines: every line is visited in
// order, with blank lines, comments, docstring blocks, import statements
// and decorators discarded. Surviving lines have their leading
// whitespace stripped; their original 1-based line numbers are carried
// alongside for reporting.
//
// On any I/O or decode error the file is skipped entirely — the caller
// receives ErrNormalization wrapping the underlying cause and should
// continue with the remaining files.
func Normalize(path string) (*NormalizedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, ErrNormalization)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s exceeds max file size: %w", path, ErrNormalization)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, ErrNormalization)
	}
	defer f.Close()

	nf := &NormalizedFile{Path: path}
	inDocstring := false
	lineNo := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if isDocstringFence(trimmed) {
			inDocstring = !inDocstring
			continue
		}
		if inDocstring {
			continue
		}

		if isComment(trimmed) || isImport(trimmed) || isDecorator(trimmed) {
			continue
		}

		nf.CodeLines = append(nf.CodeLines, strings.TrimLeft(line, " \t"))
		nf.OriginalLineNums = append(nf.OriginalLineNums, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, ErrNormalization)
	}

	return nf, nil
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#")
}

func isDocstringFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''")
}

func isImport(trimmed string) bool {
	return strings.HasPrefix(trimmed, "import") || strings.HasPrefix(trimmed, "from")
}

func isDecorator(trimmed string) bool {
	return strings.HasPrefix(trimmed, "@")
}
