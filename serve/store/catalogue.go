package store

import "github.com/PolarTechJordan/richtemple/cmn"

const (
	CategoryAll      = "all"
	CategoryPhysical = "physical" // 实体法物
	CategoryDigital  = "digital"  // 数字法物
)

// Category 法物分类
type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var categories = []Category{
	{Id: CategoryAll, Name: "全部", Icon: "🏪"},
	{Id: CategoryPhysical, Name: "实体法物", Icon: "🧿"},
	{Id: CategoryDigital, Name: "数字法物", Icon: "💎"},
}

// Categories 返回法物分类
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func validCategory(category string) bool {
	for _, c := range categories {
		if c.Id == category {
			return true
		}
	}
	return false
}

// 初始法物目录
var catalogue = []cmn.TTalisman{
	{Name: "开光平安符", Category: CategoryPhysical, Price: "0.01", Currency: "ETH", Image: "🧿", Description: "传统开光平安符，护身辟邪，保平安健康"},
	{Name: "招财符", Category: CategoryPhysical, Price: "0.02", Currency: "ETH", Image: "💰", Description: "招财进宝符，助您财运亨通，事业顺利"},
	{Name: "NFT护身符", Category: CategoryDigital, Price: "0.005", Currency: "ETH", Image: "💎", Description: "数字护身符NFT，区块链永久保存，随身携带"},
	{Name: "功德证书", Category: CategoryDigital, Price: "0.003", Currency: "ETH", Image: "📜", Description: "上香功德证书，记录您的善行，功德无量"},
	{Name: "文昌符", Category: CategoryPhysical, Price: "0.015", Currency: "ETH", Image: "📚", Description: "文昌帝君加持，助学业有成，智慧开启"},
	{Name: "数字符咒", Category: CategoryDigital, Price: "0.008", Currency: "ETH", Image: "🔮", Description: "数字化符咒，AI生成，个性化定制"},
}
