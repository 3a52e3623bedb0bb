package lexer

import (
	"sort"
	"unicode/utf8"
)

// keywords is the closed keyword vocabulary. Declaration order is kept
// for stable matching; the index below sorts by length so longer words
// win over their prefixes (乃止是遍 before 乃止, 若其然者 before 若).
var keywords = []string{
	"吾有",
	"今有",
	"物之",
	"有",
	"數",
	"列",
	"言",
	"術",
	"爻",
	"物",
	"元",
	"書之",
	"名之曰",
	"施",
	"以施",
	"曰",
	"噫",
	"取",
	"昔之",
	"今",
	"是矣",
	"不復存矣",
	"其",
	"乃得",
	"乃得矣",
	"乃歸空無",
	"是謂",
	"之術也",
	"必先得",
	"是術曰",
	"乃行是術曰",
	"欲行是術",
	"也",
	"云云",
	"凡",
	"中之",
	"恆為是",
	"為是",
	"遍",
	"乃止",
	"乃止是遍",
	"若非",
	"若",
	"者",
	"若其然者",
	"若其不然者",
	"或若",
	"其物如是",
	"之物也",
	"夫",
	"等於",
	"不等於",
	"不大於",
	"不小於",
	"大於",
	"小於",
	"加",
	"減",
	"乘",
	"除",
	"中有陽乎",
	"中無陰乎",
	"變",
	"所餘幾何",
	"以",
	"於",
	"之長",
	"之",
	"充",
	"銜",
	"其餘",
	"陰",
	"陽",
	"吾嘗觀",
	"中",
	"之書",
	"方悟",
	"之義",
	"嗚呼",
	"之禍",
	"姑妄行此",
	"如事不諧",
	"豈",
	"之禍歟",
	"不知何禍歟",
	"乃作罷",
	"或云",
	"蓋謂",
	"注曰",
	"疏曰",
	"批曰",
}

var keywordsByFirst = buildKeywordIndex()

func buildKeywordIndex() map[rune][]string {
	byLength := make([]string, len(keywords))
	copy(byLength, keywords)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})
	idx := make(map[rune][]string)
	for _, w := range byLength {
		r, _ := utf8.DecodeRuneInString(w)
		idx[r] = append(idx[r], w)
	}
	return idx
}
