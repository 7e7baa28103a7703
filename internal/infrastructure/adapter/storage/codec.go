package storage

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
)

// Compressor transforms the encoded document before it is written
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Close()
}

// NoCompression stores the JSON document as is
type NoCompression struct{}

func (NoCompression) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoCompression) Decompress(data []byte) ([]byte, error) { return data, nil }
func (NoCompression) Close()                                 {}

// ZstdCompression compresses the document with zstd
type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdCompression creates a reusable zstd encoder/decoder pair
func NewZstdCompression() (*ZstdCompression, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	return z.encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	return z.decoder.DecodeAll(data, nil)
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

// encodeLedgers serializes the collection as {userId: ledger}
func encodeLedgers(ledgers map[string]*entity.UserTimeLedger) ([]byte, error) {
	if ledgers == nil {
		ledgers = map[string]*entity.UserTimeLedger{}
	}
	data, err := json.Marshal(ledgers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledgers: %w", err)
	}
	return data, nil
}

// decodeLedgers parses {userId: ledger}; an empty input is an empty collection
func decodeLedgers(data []byte) (map[string]*entity.UserTimeLedger, error) {
	ledgers := map[string]*entity.UserTimeLedger{}
	if len(data) == 0 {
		return ledgers, nil
	}

	if err := json.Unmarshal(data, &ledgers); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageCorrupt, err)
	}
	if ledgers == nil {
		// literal null
		return map[string]*entity.UserTimeLedger{}, nil
	}

	for userID, ledger := range ledgers {
		if ledger == nil {
			return nil, fmt.Errorf("%w: null ledger for user %s", errs.ErrStorageCorrupt, userID)
		}
		ledger.UserID = userID
		if ledger.CheckIns == nil {
			ledger.CheckIns = []entity.TimeEntry{}
		}
	}
	return ledgers, nil
}
