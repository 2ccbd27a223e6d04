// Package config 加载注音工具的配置
// 查找表按配置注入，而不是隐藏在包级可变状态里，便于用自定义表做测试
package config

import (
	"fmt"
	"os"

	"github.com/kanatext/go-furigana-agent/pkg/jptext"
	"github.com/spf13/viper"
)

// Config 保存注音工具的所有配置
type Config struct {
	// 注音行为
	PreserveLongVowel bool   `mapstructure:"preserve_long_vowel"` // 保留读音中的长音符 ー，不转换为元音
	FilterElementary  bool   `mapstructure:"filter_elementary"`   // 过滤模式：初级汉字词不注音
	Source            string `mapstructure:"source"`              // 词条来源标签（epub / epub_smart / text）

	// 输出
	PublicDir string `mapstructure:"public_dir"` // 各书输出目录所在的根目录

	// 查找表扩展（在内置表基础上追加）
	ExtraElementaryKanji string   `mapstructure:"extra_elementary_kanji"` // 追加的初级汉字（连续书写）
	ExtraOkurigana       []string `mapstructure:"extra_okurigana"`        // 追加的送假名词尾
	ExtraParticles       []string `mapstructure:"extra_particles"`        // 追加的助词

	// 日志
	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`
}

// LoadConfig 从文件加载配置
// 未指定路径时依次查找当前目录和用户主目录下的 .furigana-agent.yaml；
// 找不到配置文件时返回默认配置
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".furigana-agent")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("preserve_long_vowel", false)
	v.SetDefault("filter_elementary", false)
	v.SetDefault("source", "epub_smart")
	v.SetDefault("public_dir", "public")
}

func validate(cfg *Config) error {
	switch cfg.Source {
	case "epub", "epub_smart", "text":
		return nil
	default:
		return fmt.Errorf("invalid source label: %q", cfg.Source)
	}
}

// Tables 根据配置构造查找表集合
func (c *Config) Tables() *jptext.TableSet {
	return jptext.NewTables([]rune(c.ExtraElementaryKanji), c.ExtraOkurigana, c.ExtraParticles)
}
