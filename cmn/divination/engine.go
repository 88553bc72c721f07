package divination

import (
	"fmt"
	"strings"
)

// tier 运势分档，按顺序匹配第一个 minLuck <= luck 的档位
type tier struct {
	minLuck    int
	prediction string
	advice     string
}

var tiers = []tier{
	{
		minLuck:    8,
		prediction: "实现的可能性很高，时机已经成熟，可以积极行动。",
		advice:     "诚心祈福，保持善念，您的愿望将会实现。建议多行善事，积累福德。",
	},
	{
		minLuck:    6,
		prediction: "有一定的实现可能，需要耐心等待合适的时机。",
		advice:     "保持耐心，坚持努力，时机成熟时自然水到渠成。建议多烧香祈福。",
	},
	{
		minLuck:    4,
		prediction: "面临一些挑战，需要谨慎处理，调整策略。",
		advice:     "需要调整心态，化解阻碍，可通过上香祈福来改善运势。",
	},
}

var lowestTier = tier{
	prediction: "当前阻力较大，建议暂缓行动，寻求其他途径。",
	advice:     "当前运势低迷，建议多行善事，上香祈福，等待时机转变。",
}

func tierFor(luck int) tier {
	for _, t := range tiers {
		if luck >= t.minLuck {
			return t
		}
	}
	return lowestTier
}

// PredictionFor 按运势评分给出运势预测语
func PredictionFor(luck int) string {
	return tierFor(luck).prediction
}

// AdviceFor 按运势评分给出神明指引语
func AdviceFor(luck int) string {
	return tierFor(luck).advice
}

// HexagramIndex 三数之和对 6 取模（结果总在 [0, 5]）
func HexagramIndex(numbers [3]int) int {
	sum := numbers[0] + numbers[1] + numbers[2]
	return ((sum % HexagramCount) + HexagramCount) % HexagramCount
}

// ComputeFallback 本地推算占卜结果，用于无法调用大模型时
func ComputeFallback(wish string, numbers [3]int) Result {
	hexagram, err := Lookup(HexagramIndex(numbers))
	if err != nil {
		panic(err)
	}

	t := tierFor(hexagram.Luck)

	divination := fmt.Sprintf("根据您选择的数字 %d、%d、%d，推算得出「%s」卦象。此卦象预示着%s。",
		numbers[0], numbers[1], numbers[2], hexagram.Name, hexagram.Meaning)
	prediction := fmt.Sprintf("您的愿望「%s」在当前时运下，%s", wish, t.prediction)
	advice := "神明指引：" + t.advice

	return Result{
		Success:    true,
		Divination: divination,
		Prediction: prediction,
		Advice:     advice,
		Luck:       hexagram.Luck,
		FullText:   ComposeFullText(divination, prediction, advice, hexagram.Luck),
	}
}

// ComposeFullText 按固定段落标记拼接完整文本，段落之间空一行
func ComposeFullText(divination, prediction, advice string, luck int) string {
	var b strings.Builder
	b.WriteString(MarkerDivination + "\n" + divination + "\n\n")
	b.WriteString(MarkerPrediction + "\n" + prediction + "\n\n")
	b.WriteString(MarkerAdvice + "\n" + advice + "\n\n")
	b.WriteString(MarkerLuck + "\n" + fmt.Sprintf("总体运势评分：%d/10分", luck))
	return b.String()
}
