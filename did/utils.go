package did

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

// Strip0x removes a leading "0x" prefix if present.
func Strip0x(value string) string {
	if strings.HasPrefix(value, "0x") {
		return value[2:]
	}
	return value
}

// TrimNulBytes drops every 0x00 byte from the buffer. Fixed-width bytes32
// fields are NUL padded on chain; trimming recovers the original UTF-8 text.
func TrimNulBytes(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	for _, b := range buf {
		if b != 0 {
			out = append(out, b)
		}
	}
	return out
}

// ToUTF8Lossy interprets bytes as UTF-8, replacing each invalid sequence
// with the Unicode replacement character.
func ToUTF8Lossy(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}
	var b strings.Builder
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		b.WriteRune(r)
		buf = buf[size:]
	}
	return b.String()
}

// EncodeHex encodes bytes as lower-case hex without a prefix.
func EncodeHex(value []byte) string {
	return hex.EncodeToString(value)
}

// EncodeBase64 encodes bytes using standard base64.
func EncodeBase64(value []byte) string {
	return base64.StdEncoding.EncodeToString(value)
}

// EncodeBase58 encodes bytes using the Bitcoin base58 alphabet.
func EncodeBase58(value []byte) string {
	return base58.Encode(value)
}

// ExtractIdentifier returns the final colon-separated component of a DID,
// with any query part removed.
func ExtractIdentifier(did string) string {
	did = strings.SplitN(did, "?", 2)[0]
	components := strings.Split(did, ":")
	return components[len(components)-1]
}

// PublicKeyFromDID returns the identifier of a did:ethr string when it is a
// compressed public key rather than an address. A 20-byte address identifier
// (42 chars with the 0x prefix) yields no public key.
func PublicKeyFromDID(did string) (string, bool) {
	if !strings.HasPrefix(did, "did:ethr") {
		return "", false
	}

	id := ExtractIdentifier(did)
	if len(id) > 42 {
		return id, true
	}
	return "", false
}
