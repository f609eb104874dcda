package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/ebbutton/pkg/embedded"
	"github.com/decker502/ebbutton/pkg/render"
	"gopkg.in/yaml.v3"
)

// DefaultButtonThemePath 内置主题文件路径（嵌入资源）
const DefaultButtonThemePath = "data/button_theme.yaml"

// ButtonTheme 按钮主题配置
//
// Palette 定义具名颜色，Roles 把绘制用的颜色角色绑定到具名颜色：
//
//	palette:
//	  blue: "#3f51b5"
//	roles:
//	  accent_strong: blue
type ButtonTheme struct {
	Palette map[string]string           `yaml:"palette"`
	Roles   map[render.ColorName]string `yaml:"roles"`
	Font    FontConfig                  `yaml:"font"`
}

// FontConfig 按钮文字字号
type FontConfig struct {
	NormalSize  float64 `yaml:"normalSize"`
	CompactSize float64 `yaml:"compactSize"`
}

// DefaultButtonTheme 返回默认主题
// 颜色：常态浅蓝填充、按下深蓝填充、白色镂空、悬停时深灰文字
func DefaultButtonTheme() *ButtonTheme {
	return &ButtonTheme{
		Palette: map[string]string{
			"blue":       "#3f51b5",
			"light_blue": "#9fa8da",
			"white":      "#ffffff",
			"black":      "#616161",
		},
		Roles: map[render.ColorName]string{
			render.ColorAccentStrong:     "blue",
			render.ColorAccentWeak:       "light_blue",
			render.ColorMask:             "white",
			render.ColorForegroundStrong: "black",
		},
		Font: FontConfig{
			NormalSize:  14,
			CompactSize: 10,
		},
	}
}

// LoadButtonTheme 从 YAML 文件加载按钮主题
//
// 以 "data/" 开头的路径从嵌入资源读取，其他路径从文件系统读取。
// 文件中未出现的颜色、角色和字号保留默认值。
//
// 返回：
//   - *ButtonTheme: 解析并校验后的主题
//   - error: 读取、解析或校验失败
func LoadButtonTheme(path string) (*ButtonTheme, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsEmbeddedPath(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read button theme %s: %w", path, err)
	}

	theme, err := ParseButtonTheme(data)
	if err != nil {
		return nil, fmt.Errorf("invalid button theme in %s: %w", path, err)
	}
	return theme, nil
}

// ParseButtonTheme 解析 YAML 主题数据（在默认主题之上覆盖）
func ParseButtonTheme(data []byte) (*ButtonTheme, error) {
	theme := DefaultButtonTheme()
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse button theme YAML: %w", err)
	}

	applyButtonThemeDefaults(theme)

	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// applyButtonThemeDefaults 为缺失或非法的字号设置默认值
func applyButtonThemeDefaults(theme *ButtonTheme) {
	defaults := DefaultButtonTheme()
	if theme.Font.NormalSize <= 0 {
		theme.Font.NormalSize = defaults.Font.NormalSize
	}
	if theme.Font.CompactSize <= 0 {
		theme.Font.CompactSize = defaults.Font.CompactSize
	}
}

// Validate 校验主题：每个颜色角色都必须绑定到调色板中可解析的颜色
func (t *ButtonTheme) Validate() error {
	var errs []error
	for _, role := range render.AllColorNames {
		name, ok := t.Roles[role]
		if !ok || name == "" {
			errs = append(errs, fmt.Errorf("role %q is not bound", role))
			continue
		}
		hex, ok := t.Palette[name]
		if !ok {
			errs = append(errs, fmt.Errorf("role %q refers to unknown color %q", role, name))
			continue
		}
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("color %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// RenderPalette 把角色绑定解析为渲染器使用的调色板
func (t *ButtonTheme) RenderPalette() (render.Palette, error) {
	palette := make(render.Palette, len(t.Roles))
	for role, name := range t.Roles {
		hex, ok := t.Palette[name]
		if !ok {
			return nil, fmt.Errorf("role %q refers to unknown color %q", role, name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		palette[role] = c
	}
	return palette, nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
