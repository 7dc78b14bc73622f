package enroll

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/cryptox"
)

const (
	serverTimeSize = 8
	serialSize     = 17

	// ResponseSize is the minimum length of a valid enrollment response.
	ResponseSize = serverTimeSize + serialSize + cryptox.PadSize
)

// Response is a decoded enrollment response.
type Response struct {
	ServerTimeMillis uint64
	Serial           string
	EncryptedSecret  []byte
}

// ParseResponse decodes the fixed-layout enrollment response. Trailing NUL
// and space padding is removed from the serial. Bytes past ResponseSize are
// ignored.
func ParseResponse(b []byte) (Response, error) {
	if len(b) < ResponseSize {
		return Response{}, fmt.Errorf("%w: got %d bytes, need %d", common.ErrMalformedResponse, len(b), ResponseSize)
	}

	raw := string(b[serverTimeSize : serverTimeSize+serialSize])
	serial := strings.TrimRight(raw, serialPadding)
	if !validSerial(serial) {
		return Response{}, fmt.Errorf("%w: serial %q is not printable ASCII", common.ErrMalformedResponse, raw)
	}

	secret := make([]byte, cryptox.PadSize)
	copy(secret, b[serverTimeSize+serialSize:ResponseSize])

	return Response{
		ServerTimeMillis: binary.BigEndian.Uint64(b[:serverTimeSize]),
		Serial:           serial,
		EncryptedSecret:  secret,
	}, nil
}

// serialPadding is stripped from the end of the serial field.
const serialPadding = "\x00 "

// validSerial accepts non-empty printable ASCII.
func validSerial(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// ComputeTimeOffset returns serverMillis - localMillisAtSend. A negative value
// means the local clock is ahead of the server.
func ComputeTimeOffset(serverMillis uint64, localMillisAtSend int64) int64 {
	return int64(serverMillis) - localMillisAtSend
}
