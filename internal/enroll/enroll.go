package enroll

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/client/client"
	"github.com/dmitrijs2005/bnet-enroll/internal/cryptox"
	"github.com/dmitrijs2005/bnet-enroll/internal/logging"
	"github.com/dmitrijs2005/bnet-enroll/internal/shared"
	"github.com/google/uuid"
)

// Request selects where and as what the device enrolls.
type Request struct {
	Region  string
	Country string
}

// Enroller runs enrollment attempts against a Transport.
type Enroller struct {
	transport client.Transport
	encryptor *cryptox.Encryptor
	random    io.Reader
	now       func() time.Time
	log       logging.Logger
}

// Option configures an Enroller.
type Option func(*Enroller)

// WithEncryptor replaces the embedded provisioning key.
func WithEncryptor(e *cryptox.Encryptor) Option {
	return func(en *Enroller) { en.encryptor = e }
}

// WithRandom replaces crypto/rand.Reader as the randomness source.
func WithRandom(r io.Reader) Option {
	return func(en *Enroller) { en.random = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(en *Enroller) { en.now = now }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(en *Enroller) { en.log = l }
}

// NewEnroller creates an Enroller. Without WithEncryptor the embedded key is
// used; failing to parse it is reported as common.ErrEncryptionSetup.
func NewEnroller(transport client.Transport, opts ...Option) (*Enroller, error) {
	en := &Enroller{
		transport: transport,
		random:    rand.Reader,
		now:       time.Now,
		log:       logging.Nop{},
	}
	for _, opt := range opts {
		opt(en)
	}

	if en.encryptor == nil {
		enc, err := cryptox.DefaultEncryptor()
		if err != nil {
			return nil, err
		}
		en.encryptor = enc
	}
	return en, nil
}

// Enroll performs one enrollment attempt. Every failure is fatal to the
// attempt and is returned wrapped with the failing stage.
func (en *Enroller) Enroll(ctx context.Context, req Request) (Device, error) {
	region := strings.ToUpper(req.Region)
	country := strings.ToUpper(req.Country)

	log := en.log.With("attempt", uuid.NewString(), "region", region, "country", country)

	pad, err := cryptox.OneTimePad(en.random, cryptox.PadSize)
	if err != nil {
		return Device{}, fmt.Errorf("generate pad: %w", err)
	}
	defer shared.WipeByteArray(pad)

	model, err := GenerateRandomModel(en.random)
	if err != nil {
		return Device{}, err
	}

	payload, err := BuildPayload(pad, country, model)
	if err != nil {
		return Device{}, fmt.Errorf("build payload: %w", err)
	}
	defer shared.WipeByteArray(payload)

	ciphertext, err := en.encryptor.Encrypt(payload)
	if err != nil {
		return Device{}, fmt.Errorf("encrypt payload: %w", err)
	}

	log.Debug(ctx, "sending enrollment request", "model", model, "bytes", len(ciphertext))

	sentAt := en.now()
	raw, err := en.transport.Send(ctx, region, ciphertext)
	if err != nil {
		log.Error(ctx, "enrollment request failed", "error", err)
		return Device{}, fmt.Errorf("send enrollment: %w", err)
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		log.Error(ctx, "bad enrollment response", "bytes", len(raw), "error", err)
		return Device{}, fmt.Errorf("parse response: %w", err)
	}

	secret, err := RecoverSecret(resp.EncryptedSecret, pad)
	if err != nil {
		return Device{}, fmt.Errorf("recover secret: %w", err)
	}

	device := Device{
		Serial:           resp.Serial,
		secret:           secret,
		TimeOffsetMillis: ComputeTimeOffset(resp.ServerTimeMillis, sentAt.UnixMilli()),
		Region:           region,
		Country:          country,
		Model:            model,
		EnrolledAt:       sentAt,
	}

	log.Info(ctx, "device enrolled", "serial", device.Serial, "time_offset_ms", device.TimeOffsetMillis)
	return device, nil
}
