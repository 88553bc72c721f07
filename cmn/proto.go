package cmn

import (
	"encoding/json"

	"github.com/jmoiron/sqlx/types"
)

type ReqProto struct {
	Action string `json:"action,omitempty"`

	Data   json.RawMessage `json:"data,omitempty"`
	Filter json.RawMessage `json:"filter,omitempty"`
}

type ReplyProto struct {
	//Status, 0: success, 1: client fault, -1: server fault, 401/403: session fault
	Status int `json:"status"`

	//Msg, Action result describe by literal
	Msg string `json:"msg,omitempty"`

	//Data, operand
	Data types.JSONText `json:"data,omitempty"`

	// RowCount, just row count
	RowCount int64 `json:"rowCount,omitempty"`
}

// NewReply 构造带数据的成功响应，序列化失败时返回 -1 状态
func NewReply(msg string, data any) ReplyProto {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal reply data")
		return ReplyProto{
			Status: -1,
			Msg:    "响应数据序列化失败",
		}
	}

	return ReplyProto{
		Status: 0,
		Msg:    msg,
		Data:   raw,
	}
}
