package divination

import (
	"regexp"
	"strconv"
	"strings"
)

// sectionEnd 段落在下一个 【 处截止
const sectionEnd = "【"

// luckScoreRe 第一个 "<数字>分"，"<数字>/10分" 视为 <数字>
var luckScoreRe = regexp.MustCompile(`(\d+)(?:/10)?分`)

// ExtractSection 取 marker 之后到下一个 【 或文本末尾之间的内容，去掉首尾空白
// marker 不存在时返回空串
func ExtractSection(text, marker string) string {
	start := strings.Index(text, marker)
	if start < 0 {
		return ""
	}

	body := text[start+len(marker):]
	if end := strings.Index(body, sectionEnd); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}

// ExtractLuckScore 取文本中第一个评分，找不到时返回 DefaultLuck
func ExtractLuckScore(text string) int {
	m := luckScoreRe.FindStringSubmatch(text)
	if m == nil {
		return DefaultLuck
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultLuck
	}

	return score
}

// Parse 从大模型或本地推算的文本中提取各段落
// 缺少段落标记不是错误，对应字段为空串
func Parse(text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = parseFailure()
		}
	}()

	return Result{
		Success:    true,
		Divination: ExtractSection(text, MarkerDivination),
		Prediction: ExtractSection(text, MarkerPrediction),
		Advice:     ExtractSection(text, MarkerAdvice),
		Luck:       ExtractLuckScore(text),
		FullText:   text,
	}
}

// ParseContent 解析大模型返回的 content 字段，非字符串内容视为解析失败
func ParseContent(content any) Result {
	text, ok := content.(string)
	if !ok {
		return parseFailure()
	}
	return Parse(text)
}

func parseFailure() Result {
	return Result{
		Success: false,
		Error:   ParseFailureMsg,
	}
}
