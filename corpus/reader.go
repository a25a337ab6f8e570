package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// RowError reports a malformed corpus row. Ingestion aborts on the
// first malformed row.
type RowError struct {
	Line int
	Row  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("corpus: line %d: malformed row %q (want 4 whitespace-separated fields)", e.Line, e.Row)
}

// Read ingests a tabular corpus: one token per row with four
// whitespace-separated fields (word c5 lemma pos), a leading header row
// that is skipped, blank lines terminating sentences and '#' comment
// lines. gzip, zstd and lz4 streams are decompressed transparently.
func Read(r io.Reader) (*Corpus, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	pr, err := decompress(br)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	var (
		tokens     []Token
		sentences  []int
		dict       = NewDictionary()
		inSentence = false
		line       = 0
	)

	sc := bufio.NewScanner(pr)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line++
		row := sc.Text()

		if line == 1 {
			// Header row.
			continue
		}
		if row == "" {
			inSentence = false
			continue
		}
		if strings.HasPrefix(row, "#") {
			continue
		}

		fields := strings.Fields(row)
		if len(fields) != 4 {
			return nil, &RowError{Line: line, Row: row}
		}

		if !inSentence {
			inSentence = true
			sentences = append(sentences, len(tokens))
		}
		tokens = append(tokens, Token{
			Word:  dict.Intern(fields[0]),
			C5:    dict.Intern(fields[1]),
			Lemma: dict.Intern(fields[2]),
			POS:   dict.Intern(fields[3]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read: %w", err)
	}

	return Build(tokens, sentences, dict), nil
}

// decompress sniffs the stream's magic bytes and wraps it with the
// matching decompressor; plain text passes through untouched.
func decompress(br *bufio.Reader) (io.Reader, error) {
	magic, err := br.Peek(4)
	if err != nil && len(magic) < 2 {
		// Too short to be compressed; let the scanner see it as-is.
		return br, nil
	}

	switch {
	case len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		return gzip.NewReader(br)
	case len(magic) >= 4 && magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case len(magic) >= 4 && magic[0] == 0x04 && magic[1] == 0x22 && magic[2] == 0x4d && magic[3] == 0x18:
		return lz4.NewReader(br), nil
	default:
		return br, nil
	}
}
