package fetcher

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// EncodingAuto keeps valid UTF-8 as is and decodes anything else as
// Windows-1252, the usual encoding of spreadsheet exports on Windows.
const EncodingAuto = "auto"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw file bytes to UTF-8. charset is EncodingAuto (or
// empty) or any WHATWG encoding label such as "utf-8", "latin1" or
// "windows-1252". A leading UTF-8 byte order mark is removed.
func DecodeText(data []byte, charset string) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	label := strings.ToLower(strings.TrimSpace(charset))
	if label == "" || label == EncodingAuto {
		if utf8.Valid(data) {
			return data, nil
		}
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, eris.Wrap(err, "csv: decode windows-1252")
		}
		return decoded, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: unsupported charset %q", charset)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: decode %s", label)
	}
	return bytes.TrimPrefix(decoded, utf8BOM), nil
}
