package divination

import "encoding/json"

// 结果文本中的段落标记
const (
	MarkerDivination = "【卦象解析】"
	MarkerPrediction = "【运势预测】"
	MarkerAdvice     = "【神明指引】"
	MarkerLuck       = "【吉凶判断】"
)

// DefaultLuck 文本中找不到评分时的默认运势评分
const DefaultLuck = 7

// ParseFailureMsg 解析失败时结果中携带的错误标识
const ParseFailureMsg = "解析结果失败"

// Result 占卜结果，构造后不再修改
type Result struct {
	Success    bool   `json:"success"`
	Divination string `json:"divination"`
	Prediction string `json:"prediction"`
	Advice     string `json:"advice"`
	Luck       int    `json:"luck"`
	FullText   string `json:"fullText"`
	Error      string `json:"error,omitempty"`
}

// MarshalJSON 失败结果只输出 success 与 error
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{Success: false, Error: r.Error})
	}

	type plain Result
	return json.Marshal(plain(r))
}
