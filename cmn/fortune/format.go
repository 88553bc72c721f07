package fortune

import (
	"strings"
)

// 运势段落类型
const (
	SectionHeader  = "header"
	SectionFortune = "fortune"
	SectionAdvice  = "advice"
)

const (
	headerTitle = "黄道吉日"
	star        = "★"
)

// Section 每日运势中的一个展示段落
type Section struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Stars   int      `json:"stars,omitempty"`
	Content []string `json:"content"`
}

// FormatContent 把每日运势文本分成展示段落
//
// 黄道吉日 开始头部段落，直到 忌 行结束；带 ★ 的行是一个评级段落，其下一行是内容；
// 今日建议 / 今日幸运 各开始一个建议段落。其他不属于任何段落的行被忽略。
func FormatContent(text string) []Section {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var (
		sections []Section
		current  *Section
	)
	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for i, line := range lines {
		switch {
		case line == headerTitle:
			flush()
			current = &Section{Type: SectionHeader, Title: line, Content: []string{}}
		case strings.HasPrefix(line, "宜 ") || strings.HasPrefix(line, "忌 "):
			if current != nil {
				current.Content = append(current.Content, line)
			}
			if strings.HasPrefix(line, "忌 ") {
				flush()
			}
		case strings.Contains(line, star):
			flush()
			next := ""
			if i+1 < len(lines) {
				next = lines[i+1]
			}
			sections = append(sections, Section{
				Type:    SectionFortune,
				Title:   strings.SplitN(line, star, 2)[0],
				Stars:   strings.Count(line, star),
				Content: []string{next},
			})
		case line == "今日建议" || line == "今日幸运":
			flush()
			current = &Section{Type: SectionAdvice, Title: line, Content: []string{}}
		case current != nil:
			current.Content = append(current.Content, line)
		}
	}
	flush()

	return sections
}
