package divination

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for i := 0; i < HexagramCount; i++ {
		h, err := Lookup(i)
		require.NoError(t, err)
		assert.Equal(t, Hexagrams()[i], h)
	}

	for _, i := range []int{-1, 6, 100} {
		_, err := Lookup(i)
		assert.True(t, errors.Is(err, ErrInvalidIndex), "index %d", i)
	}
}

func TestHexagramsIsCopy(t *testing.T) {
	table := Hexagrams()
	table[0].Luck = 1

	h, err := Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, 9, h.Luck)
}

func TestComputeFallbackMapping(t *testing.T) {
	tests := []struct {
		numbers [3]int
		name    string
		luck    int
	}{
		{[3]int{1, 1, 1}, "赤口", 4},
		{[3]int{1, 2, 3}, "大安", 9},
		{[3]int{12, 12, 12}, "大安", 9},
		{[3]int{1, 1, 6}, "速喜", 8},
		{[3]int{99, 99, 99}, "赤口", 4},
		{[3]int{1, 1, 5}, "留连", 6},
		{[3]int{1, 1, 8}, "小吉", 7},
		{[3]int{2, 2, 1}, "空亡", 3},
		{[3]int{-1, 0, 0}, "空亡", 3},
		{[3]int{-7, 0, 0}, "空亡", 3},
	}

	for _, tt := range tests {
		r := ComputeFallback("求财", tt.numbers)
		assert.True(t, r.Success)
		assert.Equal(t, tt.luck, r.Luck, "numbers %v", tt.numbers)
		assert.Contains(t, r.Divination, "「"+tt.name+"」", "numbers %v", tt.numbers)
	}
}

func TestComputeFallbackDeterministic(t *testing.T) {
	a := ComputeFallback("家人平安", [3]int{7, 42, 88})
	b := ComputeFallback("家人平安", [3]int{7, 42, 88})
	assert.Equal(t, a.FullText, b.FullText)
}

func TestComputeFallbackFullTextLayout(t *testing.T) {
	r := ComputeFallback("学业进步", [3]int{1, 1, 1})

	want := "【卦象解析】\n" +
		"根据您选择的数字 1、1、1，推算得出「赤口」卦象。此卦象预示着需要谨慎言行，避免冲突。\n\n" +
		"【运势预测】\n" +
		"您的愿望「学业进步」在当前时运下，面临一些挑战，需要谨慎处理，调整策略。\n\n" +
		"【神明指引】\n" +
		"神明指引：需要调整心态，化解阻碍，可通过上香祈福来改善运势。\n\n" +
		"【吉凶判断】\n" +
		"总体运势评分：4/10分"

	assert.Equal(t, want, r.FullText)
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		luck int
		want string
	}{
		{10, "实现的可能性很高"},
		{8, "实现的可能性很高"},
		{7, "有一定的实现可能"},
		{6, "有一定的实现可能"},
		{5, "面临一些挑战"},
		{4, "面临一些挑战"},
		{3, "当前阻力较大"},
		{0, "当前阻力较大"},
	}

	for _, tt := range tests {
		assert.True(t, strings.HasPrefix(PredictionFor(tt.luck), tt.want), "luck %d", tt.luck)
	}

	assert.Equal(t, tierFor(8).advice, AdviceFor(9))
	assert.NotEqual(t, AdviceFor(8), AdviceFor(7))
	assert.NotEqual(t, AdviceFor(6), AdviceFor(5))
	assert.NotEqual(t, AdviceFor(4), AdviceFor(3))
}

func TestParseRoundTrip(t *testing.T) {
	for a := 1; a <= 99; a += 7 {
		for b := 1; b <= 99; b += 13 {
			for c := 1; c <= 6; c++ {
				want := ComputeFallback("愿望成真", [3]int{a, b, c})
				got := Parse(want.FullText)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("round trip for %d,%d,%d mismatch (-want +got):\n%s", a, b, c, diff)
				}
			}
		}
	}
}

func TestParseWithoutMarkers(t *testing.T) {
	r := Parse("random text with no markers")

	assert.True(t, r.Success)
	assert.Empty(t, r.Divination)
	assert.Empty(t, r.Prediction)
	assert.Empty(t, r.Advice)
	assert.Equal(t, DefaultLuck, r.Luck)
	assert.Equal(t, "random text with no markers", r.FullText)
}

func TestParseGeneratedText(t *testing.T) {
	text := `好的，以下是分析。

【运势预测】
财运渐旺，宜守不宜攻。

【卦象解析】
1. **您与事情的关系 (人 vs 事):** 木与火为**生**关系。

【吉凶判断】
总体运势评分：8/10分

【神明指引】
多行善事。`

	r := Parse(text)
	assert.True(t, r.Success)
	assert.Equal(t, "1. **您与事情的关系 (人 vs 事):** 木与火为**生**关系。", r.Divination)
	assert.Equal(t, "财运渐旺，宜守不宜攻。", r.Prediction)
	assert.Equal(t, "多行善事。", r.Advice)
	assert.Equal(t, 8, r.Luck)
	assert.Equal(t, text, r.FullText)
}

func TestExtractSectionTruncatesAtBracket(t *testing.T) {
	text := "【运势预测】\n前半段【注】后半段"
	assert.Equal(t, "前半段", ExtractSection(text, MarkerPrediction))
	assert.Empty(t, ExtractSection(text, MarkerAdvice))
	assert.Empty(t, ExtractSection("【神明指引】", MarkerAdvice))
}

func TestExtractLuckScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"总体运势评分：8/10分", 8},
		{"无分数信息", 7},
		{"运势 6分，尚可", 6},
		{"总体运势评分（1-10分）", 10},
		{"先得 3分，后得 9/10分", 3},
		{"99999999999999999999999分", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractLuckScore(tt.text), tt.text)
	}
}

func TestParseContent(t *testing.T) {
	r := ParseContent("【神明指引】\n静心")
	assert.True(t, r.Success)
	assert.Equal(t, "静心", r.Advice)

	for _, content := range []any{nil, 42, map[string]any{"text": "x"}} {
		r := ParseContent(content)
		assert.False(t, r.Success)
		assert.Equal(t, ParseFailureMsg, r.Error)
		assert.Empty(t, r.FullText)
	}
}

func TestResultJSON(t *testing.T) {
	raw, err := json.Marshal(ComputeFallback("平安", [3]int{1, 1, 4}))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{"success", "divination", "prediction", "advice", "luck", "fullText"} {
		assert.Contains(t, m, k)
	}
	assert.NotContains(t, m, "error")

	raw, err = json.Marshal(ParseContent(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"解析结果失败"}`, string(raw))
}
