package jptext

import "strings"

// 各元音段的前接假名表，长音符依据前一个假名所在的段决定补写的元音
// 日语正书法：あ段→あ、い段→い、う段→う、え段→い、お段→う
const (
	rowA = "あかがさざただなはばぱまやらわ"
	rowI = "いきぎしじちぢにひびぴみり"
	rowU = "うくぐすずつづぬふぶぷむゆる"
	rowE = "えけげせぜてでねへべぺめれ"
	rowO = "おこごそぞとどのほぼぽもよろを"
)

// 小写假名的长音映射（ぇ 的长音按正书法写作 い）
var smallKanaVowel = map[rune]rune{
	'ぁ': 'あ',
	'ぃ': 'い',
	'ぅ': 'う',
	'ぇ': 'い',
	'ぉ': 'う',
}

// ToHiragana 将片假名读音转换为平假名
// preserveLongVowel 为 true 时长音符 ー 原样保留；为 false 时根据前一个
// 已输出假名所在的元音段替换为对应元音（例如 しょー → しょう）
func ToHiragana(reading string, preserveLongVowel bool) string {
	var out []rune
	for _, r := range reading {
		switch {
		case IsLongVowelMark(r):
			if preserveLongVowel || len(out) == 0 {
				// 没有前接字符时无法判断元音段，原样保留
				out = append(out, 'ー')
			} else {
				out = append(out, longVowelFor(out[len(out)-1]))
			}
		case r >= 0x30A1 && r <= 0x30F6:
			// 片假名与平假名在码表上相差固定偏移 0x60
			out = append(out, r-0x60)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// longVowelFor 根据前一个假名所在的元音段决定长音符应补写的元音
func longVowelFor(prev rune) rune {
	switch {
	case strings.ContainsRune(rowA, prev):
		return 'あ'
	case strings.ContainsRune(rowI, prev):
		return 'い'
	case strings.ContainsRune(rowU, prev):
		return 'う'
	case strings.ContainsRune(rowE, prev):
		// え段的长音按正书法写作 い（けい、せい 等）
		return 'い'
	case strings.ContainsRune(rowO, prev):
		// お段的长音按正书法写作 う（こう、そう 等）
		return 'う'
	case prev == 'ゃ' || prev == 'ゅ' || prev == 'ょ':
		return 'う'
	}
	if v, ok := smallKanaVowel[prev]; ok {
		return v
	}
	// 无法识别时取最常见的 う
	return 'う'
}
