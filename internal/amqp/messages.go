package amqp

import (
	"encoding/json"
	"time"
)

// Action names the lifecycle change a TransactionEventMessage describes.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// TransactionEventMessage is a lightweight change notification. It carries only
// the transaction id; consumers fetch the current record from the store.
type TransactionEventMessage struct {
	ID        int64     `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionEventMessage(action Action, id int64) *TransactionEventMessage {
	return &TransactionEventMessage{
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
