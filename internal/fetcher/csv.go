package fetcher

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// CSVOptions configures CSV parsing.
type CSVOptions struct {
	Delimiter rune   // 0 = sniff from the header line
	Charset   string // "" or "auto" = UTF-8 with Windows-1252 fallback
	TrimSpace bool   // trim every cell
}

// candidateDelimiters are tried by SniffDelimiter, in tie-break order.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// SniffDelimiter picks the candidate delimiter occurring most often in the
// header line, ignoring quoted text. Comma wins ties and empty lines.
func SniffDelimiter(header string) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	inQuotes := false
	for _, r := range header {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}
	best := ','
	for _, d := range candidateDelimiters {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

// StreamCSV parses decoded CSV text from r and sends each record to the row
// channel, header included. Records may have differing lengths. Both
// channels are closed when parsing stops.
func StreamCSV(ctx context.Context, r io.Reader, opts CSVOptions) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		reader.Comma = ','
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}

			if opts.TrimSpace {
				for i, field := range record {
					record[i] = strings.TrimSpace(field)
				}
			}

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

// ReadCSVFrame reads a whole CSV document into a Frame. The first record is
// the header; ragged rows are padded or truncated to the header width.
func ReadCSVFrame(ctx context.Context, r io.Reader, opts CSVOptions) (*model.Frame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "csv: read input")
	}
	data, err := DecodeText(raw, opts.Charset)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, eris.New("csv: empty file")
	}

	if opts.Delimiter == 0 {
		opts.Delimiter = SniffDelimiter(firstLine(data))
	}

	rowCh, errCh := StreamCSV(ctx, bytes.NewReader(data), opts)
	var header []string
	var rows [][]string
	for rec := range rowCh {
		if header == nil {
			header = rec
			continue
		}
		rows = append(rows, rec)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	if header == nil {
		return nil, eris.New("csv: empty file")
	}

	return model.NewFrame(UniqueHeaders(header), rows), nil
}

func firstLine(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

// WriteCSV writes the frame, header first, as comma-separated UTF-8.
func WriteCSV(w io.Writer, f *model.Frame) error {
	return writeDelimited(w, f, ',')
}

func writeDelimited(w io.Writer, f *model.Frame, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(f.Columns); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, row := range f.Rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "csv: write row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}
