package divination

import (
	"errors"
	"fmt"
)

// HexagramCount 小六壬六神数量
const HexagramCount = 6

// ErrInvalidIndex 卦象下标越界
var ErrInvalidIndex = errors.New("invalid hexagram index")

// Hexagram 小六壬卦象
type Hexagram struct {
	Name    string `json:"name"`    // 卦名
	Meaning string `json:"meaning"` // 卦意
	Luck    int    `json:"luck"`    // 运势评分 1-10
}

var hexagrams = [HexagramCount]Hexagram{
	{Name: "大安", Meaning: "事事如意，心想事成", Luck: 9},
	{Name: "留连", Meaning: "需要耐心等待，时机未到", Luck: 6},
	{Name: "速喜", Meaning: "好事将至，喜事临门", Luck: 8},
	{Name: "赤口", Meaning: "需要谨慎言行，避免冲突", Luck: 4},
	{Name: "小吉", Meaning: "小有收获，稳中求进", Luck: 7},
	{Name: "空亡", Meaning: "暂时困顿，需要调整方向", Luck: 3},
}

// Lookup 按下标查卦，下标必须在 [0, 5]
func Lookup(index int) (Hexagram, error) {
	if index < 0 || index >= HexagramCount {
		return Hexagram{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return hexagrams[index], nil
}

// Hexagrams 返回卦表副本
func Hexagrams() []Hexagram {
	out := make([]Hexagram, HexagramCount)
	copy(out, hexagrams[:])
	return out
}
