package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/QuangTung97/finledger/model"
)

func newPayload(t EventType) (Payload, error) {
	switch t {
	case EventTypeAccountCreated:
		return &AccountCreated{}, nil
	case EventTypeTransactionCreated:
		return &TransactionCreated{}, nil
	case EventTypeTransactionCategorized:
		return &TransactionCategorized{}, nil
	case EventTypeAccountRenamed:
		return &AccountRenamed{}, nil
	case EventTypeOverdraftLimitSet:
		return &OverdraftLimitSet{}, nil
	case EventTypeAccountClosed:
		return &AccountClosed{}, nil
	case EventTypeBudgetCreated:
		return &BudgetCreated{}, nil
	case EventTypeBudgetUpdated:
		return &BudgetUpdated{}, nil
	case EventTypeBudgetThresholdExceeded:
		return &BudgetThresholdExceeded{}, nil
	case EventTypeBudgetExceeded:
		return &BudgetExceeded{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, t)
	}
}

// deref turns the pointer produced by newPayload back into a value payload
func deref(p Payload) Payload {
	switch v := p.(type) {
	case *AccountCreated:
		return *v
	case *TransactionCreated:
		return *v
	case *TransactionCategorized:
		return *v
	case *AccountRenamed:
		return *v
	case *OverdraftLimitSet:
		return *v
	case *AccountClosed:
		return *v
	case *BudgetCreated:
		return *v
	case *BudgetUpdated:
		return *v
	case *BudgetThresholdExceeded:
		return *v
	case *BudgetExceeded:
		return *v
	default:
		return p
	}
}

// EncodePayload ...
func EncodePayload(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

// DecodePayload decodes the payload of an event with the given type
func DecodePayload(t EventType, data []byte) (Payload, error) {
	p, err := newPayload(t)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return deref(p), nil
}

// EncodeMetadata ...
func EncodeMetadata(m Metadata) ([]byte, error) {
	return json.Marshal(m)
}

// FromRecord decodes a stored event row
func FromRecord(r model.Event) (Event, error) {
	payload, err := DecodePayload(EventType(r.EventType), r.Payload)
	if err != nil {
		return Event{}, err
	}

	var meta Metadata
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &meta); err != nil {
			return Event{}, fmt.Errorf("decode metadata: %w", err)
		}
	}

	return Event{
		ID:            r.EventID,
		Seq:           r.Seq,
		AggregateType: r.AggregateType,
		AggregateID:   r.AggregateID,
		Version:       r.Version,
		Payload:       payload,
		Metadata:      meta,
		CreatedAt:     r.CreatedAt.UTC(),
	}, nil
}

type wireMessage struct {
	EventID       string              `json:"event_id"`
	AggregateType model.AggregateType `json:"aggregate_type"`
	AggregateID   string              `json:"aggregate_id"`
	EventType     EventType           `json:"event_type"`
	Version       int64               `json:"version"`
	Payload       json.RawMessage     `json:"payload"`
	Metadata      Metadata            `json:"metadata"`
	CreatedAt     time.Time           `json:"created_at"`
}

// MarshalMessage encodes an event as the body of a bus message
func MarshalMessage(e Event) ([]byte, error) {
	payload, err := EncodePayload(e.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{
		EventID:       e.ID,
		AggregateType: e.AggregateType,
		AggregateID:   e.AggregateID,
		EventType:     e.Type(),
		Version:       e.Version,
		Payload:       payload,
		Metadata:      e.Metadata,
		CreatedAt:     e.CreatedAt,
	})
}

// UnmarshalMessage decodes the body of a bus message
func UnmarshalMessage(data []byte) (Event, error) {
	var msg wireMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Event{}, fmt.Errorf("decode message: %w", err)
	}
	payload, err := DecodePayload(msg.EventType, msg.Payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:            msg.EventID,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		Version:       msg.Version,
		Payload:       payload,
		Metadata:      msg.Metadata,
		CreatedAt:     msg.CreatedAt.UTC(),
	}, nil
}
