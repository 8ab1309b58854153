package textconv

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Codepage identifies a byte encoding by its Windows codepage number.
type Codepage uint32

const (
	ShiftJIS    Codepage = 932
	GBK         Codepage = 936
	EUCKR       Codepage = 949
	Big5        Codepage = 950
	Windows1252 Codepage = 1252
	GB18030     Codepage = 54936
	UTF8        Codepage = 65001
)

func encodingFor(cp Codepage) (encoding.Encoding, error) {
	switch cp {
	case ShiftJIS:
		return japanese.ShiftJIS, nil
	case GBK:
		return simplifiedchinese.GBK, nil
	case EUCKR:
		return korean.EUCKR, nil
	case Big5:
		return traditionalchinese.Big5, nil
	case Windows1252:
		return charmap.Windows1252, nil
	case GB18030:
		return simplifiedchinese.GB18030, nil
	}
	return nil, fmt.Errorf("textconv: unsupported codepage %d", cp)
}

// Decode converts bytes in the given codepage to a Go string. Invalid
// sequences decode to U+FFFD.
func Decode(b []byte, cp Codepage) (string, error) {
	if cp == UTF8 {
		return strings.ToValidUTF8(string(b), "�"), nil
	}
	enc, err := encodingFor(cp)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textconv: decode codepage %d: %w", cp, err)
	}
	return string(out), nil
}

// Encode converts a Go string to bytes in the given codepage. Runes the
// codepage cannot represent encode to its substitute byte.
func Encode(s string, cp Codepage) ([]byte, error) {
	if cp == UTF8 {
		return []byte(strings.ToValidUTF8(s, "�")), nil
	}
	enc, err := encodingFor(cp)
	if err != nil {
		return nil, err
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textconv: encode codepage %d: %w", cp, err)
	}
	return out, nil
}

// Convert re-encodes bytes from the src codepage to the dst codepage,
// pivoting through Unicode.
func Convert(b []byte, src, dst Codepage) ([]byte, error) {
	s, err := Decode(b, src)
	if err != nil {
		return nil, err
	}
	return Encode(s, dst)
}

// EncodeUTF16 converts s to UTF-16 code units, without a terminator.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 converts UTF-16 code units to a Go string. Unpaired
// surrogates decode to U+FFFD.
func DecodeUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}

// DecodeWithTable decodes a double-byte encoded string using a
// caller-supplied table of 32768 code units indexed by
// ((lead<<8)|trail)-0x8000. Bytes below 0x80 map to themselves; zero
// table entries and a truncated trailing pair decode to U+FFFD.
func DecodeWithTable(b []byte, table []uint16) []uint16 {
	out := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		b1 := b[i]
		i++
		c := uint16(0xfffd)
		if b1 < 0x80 {
			c = uint16(b1)
		} else if i < len(b) {
			b2 := b[i]
			i++
			idx := (int(b1)<<8 | int(b2)) - 0x8000
			if idx >= 0 && idx < len(table) && table[idx] != 0 {
				c = table[idx]
			}
		}
		out = append(out, c)
	}
	return out
}
