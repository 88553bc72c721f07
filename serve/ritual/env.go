package ritual

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PolarTechJordan/richtemple/cmn"
	"github.com/gorilla/sessions"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	ritualSessionKey     = "ritual-session" // 祈福流程session的cookie名称
	defaultMaxWishLength = 200
)

var (
	sessionStore  *sessions.CookieStore
	currencies    = map[string]bool{"ETH": true, "USDT": true}
	maxWishLength = defaultMaxWishLength
	publicUrl     string // 分享链接使用的站点地址，为空时取请求的 Host
)

var z = zap.NewNop()

// Options 祈福流程模块配置
type Options struct {
	AuthKey       []byte
	EncryptionKey []byte
	Secure        bool
	Currencies    []string
	MaxWishLength int
	PublicUrl     string
}

func Init() {
	z = cmn.GetLogger()

	opts := Options{
		AuthKey:       []byte(viper.GetString("session.authKey")),
		EncryptionKey: []byte(viper.GetString("session.encryptionKey")),
		Secure:        viper.GetBool("session.secure"),
		Currencies:    viper.GetStringSlice("offering.currencies"),
		MaxWishLength: viper.GetInt("divination.maxWishLength"),
		PublicUrl:     viper.GetString("server.publicUrl"),
	}

	err := Setup(opts)
	if err != nil {
		z.Fatal("[ FAIL ] failed to initialize ritual module", zap.Error(err))
	}

	cmn.MiniLogger.Info("[ OK ] ritual module initialized", zap.Strings("currencies", opts.Currencies))
}

// Setup 初始化 session store 与香火币种
func Setup(opts Options) error {
	if len(opts.AuthKey) == 0 {
		return fmt.Errorf("gorilla session store key is empty")
	}
	if len(opts.EncryptionKey) == 0 {
		return fmt.Errorf("gorilla session store encryption key is empty")
	}
	switch len(opts.EncryptionKey) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("gorilla session store encryption key must be 16, 24 or 32 bytes")
	}

	store := sessions.NewCookieStore(opts.AuthKey, opts.EncryptionKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 一天
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	set := make(map[string]bool)
	for _, c := range opts.Currencies {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			set[c] = true
		}
	}
	if len(set) == 0 {
		return fmt.Errorf("no offering currency configured")
	}

	sessionStore = store
	currencies = set
	publicUrl = strings.TrimRight(opts.PublicUrl, "/")
	maxWishLength = defaultMaxWishLength
	if opts.MaxWishLength > 0 {
		maxWishLength = opts.MaxWishLength
	}

	return nil
}
