package cmn

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TDivinationName   = "t_divination"    // 占卜记录表
	TOfferingName     = "t_offering"      // 香火记录表
	TDailyFortuneName = "t_daily_fortune" // 每日运势缓存表
	TTalismanName     = "t_talisman"      // 法物表
)

// TDivination 占卜记录表
type TDivination struct {
	Id         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`              // 记录ID
	Wish       string         `gorm:"column:wish;type:text;not null" json:"wish"`                     // 愿望
	Numbers    datatypes.JSON `gorm:"column:numbers;type:jsonb" json:"numbers"`                       // 三个数字
	Source     string         `gorm:"column:source;type:varchar(20);index" json:"source"`             // 结果来源 llm/fallback
	Success    bool           `gorm:"column:success" json:"success"`                                  // 是否成功
	Divination string         `gorm:"column:divination;type:text" json:"divination"`                  // 卦象解析
	Prediction string         `gorm:"column:prediction;type:text" json:"prediction"`                  // 运势预测
	Advice     string         `gorm:"column:advice;type:text" json:"advice"`                          // 神明指引
	Luck       int            `gorm:"column:luck;type:int" json:"luck"`                               // 运势评分
	FullText   string         `gorm:"column:full_text;type:text" json:"fullText"`                     // 完整文本
	CreatedAt  int64          `gorm:"column:created_at;type:bigint;autoCreateTime:milli" json:"createdAt"` // 创建时间
}

func (TDivination) TableName() string {
	return TDivinationName
}

// TOffering 香火记录表
type TOffering struct {
	Id            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`                   // 记录ID
	DivinationId  uuid.UUID `gorm:"column:divination_id;type:uuid;not null;index" json:"divinationId"`   // 占卜记录ID
	WalletAddress string    `gorm:"column:wallet_address;type:varchar(42);index" json:"walletAddress"`   // 钱包地址
	Amount        string    `gorm:"column:amount;type:varchar(40);not null" json:"amount"`               // 香火金额
	Currency      string    `gorm:"column:currency;type:varchar(10);not null" json:"currency"`           // 币种
	TxHash        string    `gorm:"column:tx_hash;type:varchar(66)" json:"txHash"`                       // 交易哈希
	CreatedAt     int64     `gorm:"column:created_at;type:bigint;autoCreateTime:milli" json:"createdAt"` // 创建时间
}

func (TOffering) TableName() string {
	return TOfferingName
}

// TDailyFortune 每日运势缓存表，每个公历日一行
type TDailyFortune struct {
	CacheKey  string `gorm:"column:cache_key;type:varchar(40);primaryKey"`       // dailyFortune_<年>_<月>_<日>
	Fortune   string `gorm:"column:fortune;type:text"`                          // 运势文本
	Date      string `gorm:"column:date;type:varchar(20)"`                      // 公历日期
	LunarDate string `gorm:"column:lunar_date;type:varchar(20)"`                // 农历日期
	Timestamp int64  `gorm:"column:timestamp;type:bigint"`                      // 生成时间
	UpdatedAt int64  `gorm:"column:updated_at;type:bigint;autoUpdateTime:milli"` // 更新时间
}

func (TDailyFortune) TableName() string {
	return TDailyFortuneName
}

// TTalisman 法物表
type TTalisman struct {
	Id          int64  `gorm:"column:id;type:bigint;primaryKey;autoIncrement" json:"id"`     // ID
	Name        string `gorm:"column:name;type:text;not null;unique" json:"name"`           // 名称
	Category    string `gorm:"column:category;type:varchar(20);index" json:"category"`      // 分类 physical/digital
	Price       string `gorm:"column:price;type:varchar(40)" json:"price"`                  // 价格
	Currency    string `gorm:"column:currency;type:varchar(10)" json:"currency"`            // 币种
	Image       string `gorm:"column:image;type:text" json:"image"`                         // 图标
	Description string `gorm:"column:description;type:text" json:"description"`             // 描述
	CreatedAt   int64  `gorm:"column:created_at;type:bigint;autoCreateTime:milli" json:"-"` // 创建时间
}

func (TTalisman) TableName() string {
	return TTalismanName
}
