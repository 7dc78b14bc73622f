package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/enroll"
	"github.com/docker/go-units"
)

// summary is what gets printed after a successful enrollment.
type summary struct {
	Serial          string    `json:"serial"`
	Secret          []byte    `json:"-"`
	SecretHex       string    `json:"secret_hex"`
	SecretCode      string    `json:"secret_code"`
	RestoreCode     string    `json:"restore_code"`
	ProvisioningURI string    `json:"provisioning_uri"`
	TimeOffsetMS    int64     `json:"time_offset_ms"`
	Region          string    `json:"region"`
	Country         string    `json:"country"`
	Model           string    `json:"model"`
	EnrolledAt      time.Time `json:"enrolled_at"`
}

func newSummary(d enroll.Device, name string) summary {
	return summary{
		Serial:          d.Serial,
		Secret:          d.Secret(),
		SecretHex:       fmt.Sprintf("%x", d.Secret()),
		SecretCode:      d.SecretCode(),
		RestoreCode:     d.RestoreCode(),
		ProvisioningURI: d.ProvisioningURI(name),
		TimeOffsetMS:    d.TimeOffsetMillis,
		Region:          d.Region,
		Country:         d.Country,
		Model:           d.Model,
		EnrolledAt:      d.EnrolledAt,
	}
}

// describeOffset renders a clock offset as e.g. "3 seconds ahead".
func describeOffset(ms int64) string {
	if ms == 0 {
		return "in sync"
	}
	dir := "ahead"
	if ms < 0 {
		dir = "behind"
		ms = -ms
	}
	return units.HumanDuration(time.Duration(ms)*time.Millisecond) + " " + dir
}

func writeSummary(w io.Writer, s summary) error {
	_, err := fmt.Fprintf(w,
		"Time offset: %d ms (server %s)\n"+
			"Serial: %s\n"+
			"Secret Data: %s\n"+
			"Secret Code: %s\n"+
			"Restore Code: %s\n"+
			"URL: %s\n",
		s.TimeOffsetMS, describeOffset(s.TimeOffsetMS),
		s.Serial,
		secretData(s.Secret),
		s.SecretCode,
		s.RestoreCode,
		s.ProvisioningURI,
	)
	return err
}

// secretData renders raw bytes as a decimal list, e.g. "[123, 11, 250]".
func secretData(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func writeSummaryJSON(w io.Writer, s summary) error {
	return json.NewEncoder(w).Encode(s)
}

// codeLine is one JSON line of the code loop.
type codeLine struct {
	Code       string `json:"code"`
	ValidForMS int64  `json:"valid_for_ms"`
}

func writeCodeJSON(w io.Writer, code string, remaining time.Duration) error {
	return json.NewEncoder(w).Encode(codeLine{Code: code, ValidForMS: remaining.Milliseconds()})
}
