package fortune

import "fmt"

const systemPrompt = "你是一位精通中国传统命理学的大师，擅长根据日期和农历信息提供详细的运势分析。请严格按照用户要求的格式输出，保持传统文化的庄重感。"

const userPromptTemplate = `请根据今天的日期生成当日的运势情况。今天是%[1]s，农历%[2]s。

请基于传统的中华民俗文化和五行理论，生成今日运势报告，包含以下方面：
1. 总体运势评级（1-5星）
2. 财运分析
3. 事业运势
4. 感情运势
5. 健康运势
6. 今日建议
7. 幸运数字
8. 幸运颜色
9. 宜做的事情
10. 忌做的事情

请严格按照以下格式输出：

黄道吉日
%[1]s
%[2]s [吉/平/凶]
宜 [具体事项，用空格分隔]
忌 [具体事项，用空格分隔]

财运★★★★★
[财运分析内容]

事业★★★★☆
[事业运势内容]

感情★★★★☆
[感情运势内容]

健康★★★★★
[健康运势内容]

今日建议
[具体建议内容]

今日幸运
幸运颜色: [颜色]
幸运数字: [数字1], [数字2], [数字3]
幸运方位: [方位]
吉时: [时间段]

请用传统的中式语言风格，保持庄重和神秘感。`

func buildUserPrompt(date, lunarDate string) string {
	return fmt.Sprintf(userPromptTemplate, date, lunarDate)
}
