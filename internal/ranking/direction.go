// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package ranking

import (
	"strings"

	"github.com/scoutdeck/scoutdeck/internal/catalog"
)

// directionRule maps substrings of a free-text facet value to one
// canonical direction token. Rules are evaluated in order; the first
// matching substring wins, so more specific rules come first.
type directionRule struct {
	token      string
	substrings []string
}

// directionRules is the ordered matching table. English and Chinese
// synonyms normalize to the same canonical token.
var directionRules = []directionRule{
	{token: "ai_chip", substrings: []string{"chip", "semiconductor", "gpu", "npu", "芯片", "半导体"}},
	{token: "robotics", substrings: []string{"robot", "humanoid", "机器人", "具身"}},
	{token: "driving", substrings: []string{"driving", "autonomous vehicle", "self-driving", "adas", "自动驾驶", "智驾"}},
	{token: "aerospace", substrings: []string{"aerospace", "satellite", "drone", "uav", "航天", "卫星", "无人机"}},
	{token: "voice", substrings: []string{"voice", "speech", "audio", "tts", "语音", "音频"}},
	{token: "video", substrings: []string{"video", "film", "视频", "影视"}},
	{token: "image", substrings: []string{"image", "photo", "vision", "图像", "图片", "视觉"}},
	{token: "coding", substrings: []string{"coding", "code", "developer tool", "programming", "编程", "代码"}},
	{token: "agent", substrings: []string{"agent", "assistant", "copilot", "智能体", "助手"}},
	{token: "search", substrings: []string{"search", "retrieval", "搜索"}},
	{token: "data", substrings: []string{"data", "analytics", "database", "数据"}},
	{token: "security", substrings: []string{"security", "privacy", "安全", "隐私"}},
	{token: "health", substrings: []string{"health", "medical", "bio", "医疗", "健康", "生物"}},
	{token: "education", substrings: []string{"education", "learning", "tutor", "教育", "学习"}},
	{token: "finance", substrings: []string{"finance", "fintech", "trading", "金融", "支付"}},
	{token: "legal", substrings: []string{"legal", "law", "法律"}},
	{token: "marketing", substrings: []string{"marketing", "advertis", "sales", "营销", "广告"}},
	{token: "productivity", substrings: []string{"productivity", "workflow", "office", "办公", "效率"}},
	{token: "social", substrings: []string{"social", "community", "chat", "社交"}},
	{token: "gaming", substrings: []string{"game", "gaming", "游戏"}},
	{token: "music", substrings: []string{"music", "音乐"}},
	{token: "writing", substrings: []string{"writing", "content generation", "copywrit", "写作", "文案"}},
	{token: "translation", substrings: []string{"translat", "翻译"}},
	{token: "energy", substrings: []string{"energy", "battery", "能源", "电池"}},
	{token: "wearable", substrings: []string{"wearable", "glasses", "watch", "穿戴", "眼镜", "手表"}},
	{token: "smart_home", substrings: []string{"smart home", "home automation", "appliance", "智能家居", "家电"}},
	{token: "manufacturing", substrings: []string{"manufactur", "industrial", "制造", "工业"}},
	{token: "infra", substrings: []string{"infrastructure", "cloud", "serving", "inference", "算力", "云"}},
}

// ignoredTokens are generic facet values that carry no direction signal.
var ignoredTokens = map[string]bool{
	"":         true,
	"hardware": true,
	"software": true,
	"other":    true,
	"others":   true,
	"ai":       true,
	"tech":     true,
	"general":  true,
	"unknown":  true,
	"n/a":      true,
	"none":     true,
	"其他":       true,
	"通用":       true,
}

// NormalizeDirectionToken maps a free-text facet value to a canonical
// direction token, or "" when the value is generic or unrecognized.
func NormalizeDirectionToken(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if ignoredTokens[v] {
		return ""
	}
	for _, rule := range directionRules {
		for _, sub := range rule.substrings {
			if strings.Contains(v, sub) {
				return rule.token
			}
		}
	}
	return ""
}

// DirectionsOf collects every facet field of a product (including nested
// extra fields), normalizes each to the canonical vocabulary, and returns
// the deduplicated direction tokens.
func DirectionsOf(p *catalog.Product) []string {
	raw := make([]string, 0, 8)
	raw = append(raw, p.Category)
	raw = append(raw, p.Categories...)
	raw = append(raw, p.HardwareCategory, p.UseCase, p.FormFactor)
	raw = append(raw, p.InnovationTraits...)
	if p.Extra != nil {
		raw = append(raw, p.Extra.HardwareCategory, p.Extra.UseCase, p.Extra.FormFactor)
		raw = append(raw, p.Extra.InnovationTraits...)
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		token := NormalizeDirectionToken(v)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

// FacetCounts tallies direction tokens across a product list, for the
// catalog facet sidebar.
func FacetCounts(products []catalog.Product) map[string]int {
	counts := make(map[string]int)
	for i := range products {
		for _, d := range DirectionsOf(&products[i]) {
			counts[d]++
		}
	}
	return counts
}
