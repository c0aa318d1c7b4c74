package archive

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/QuangTung97/finledger/domain"
	"github.com/klauspost/compress/zstd"
)

// ContentType of archive objects
const ContentType = "application/x-ndjson"

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
}

// Record is one line of an archive object
type Record struct {
	Seq   uint64          `json:"seq"`
	Event json.RawMessage `json:"event"`
}

// Encode writes events as zstd compressed newline delimited JSON
func Encode(events []domain.Event) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range events {
		data, err := domain.MarshalMessage(e)
		if err != nil {
			return nil, fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		line, err := json.Marshal(Record{Seq: e.Seq, Event: data})
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return zstdEncoder.EncodeAll(buf.Bytes(), nil), nil
}

// Decode reads back the events of an archive object
func Decode(data []byte) ([]domain.Event, error) {
	raw, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress archive: %w", err)
	}

	var result []domain.Event
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("decode archive record: %w", err)
		}
		e, err := domain.UnmarshalMessage(r.Event)
		if err != nil {
			return nil, err
		}
		e.Seq = r.Seq
		result = append(result, e)
	}
	return result, scanner.Err()
}
