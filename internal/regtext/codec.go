package regtext

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Codec captures the byte encoding of a registry file so output can be
// written back the way the input was found.
type Codec struct {
	Encoding string
	BOM      bool
}

// DetectCodec sniffs the byte order mark of raw file data. A non-empty
// override names the encoding explicitly and wins over the default, but a
// BOM always wins over the override.
func DetectCodec(data []byte, override string) (Codec, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return Codec{Encoding: EncodingUTF16LE, BOM: true}, nil
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return Codec{Encoding: EncodingUTF8, BOM: true}, nil
	}
	switch strings.ToUpper(override) {
	case "", EncodingUTF8:
		return Codec{Encoding: EncodingUTF8}, nil
	case EncodingUTF16LE:
		return Codec{Encoding: EncodingUTF16LE}, nil
	case EncodingWindows1252, "CP1252":
		return Codec{Encoding: EncodingWindows1252}, nil
	default:
		return Codec{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, override)
	}
}

// Decode converts raw file data to text, stripping any byte order mark.
func (c Codec) Decode(data []byte) (string, error) {
	switch c.Encoding {
	case "", EncodingUTF8:
		data = bytes.TrimPrefix(data, UTF8BOM)
		return string(data), nil
	case EncodingUTF16LE:
		data = bytes.TrimPrefix(data, UTF16LEBOM)
		out, err := c.transformer().NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("regtext: decode %s: %w", c.Encoding, err)
		}
		return string(out), nil
	case EncodingWindows1252:
		out, err := c.transformer().NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("regtext: decode %s: %w", c.Encoding, err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, c.Encoding)
	}
}

// Encode converts text back to raw file data, restoring the byte order mark
// when the input carried one.
func (c Codec) Encode(text string) ([]byte, error) {
	switch c.Encoding {
	case "", EncodingUTF8:
		if c.BOM {
			return append(append([]byte{}, UTF8BOM...), text...), nil
		}
		return []byte(text), nil
	case EncodingUTF16LE:
		out, err := c.transformer().NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("regtext: encode %s: %w", c.Encoding, err)
		}
		if c.BOM {
			out = append(append([]byte{}, UTF16LEBOM...), out...)
		}
		return out, nil
	case EncodingWindows1252:
		out, err := c.transformer().NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("regtext: encode %s: %w", c.Encoding, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, c.Encoding)
	}
}

func (c Codec) transformer() encoding.Encoding {
	switch c.Encoding {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}
