package phonics

import "strings"

// readings maps written initial sounds to how a first grader reads them
// aloud. Rhymes and vowels are read as written and are not listed.
var readings = map[string]string{
	"b": "bờ", "c": "cờ", "d": "dờ", "đ": "đờ",
	"g": "gờ", "gh": "gờ", "h": "hờ", "k": "ca",
	"l": "lờ", "m": "mờ", "n": "nờ", "ng": "ngờ",
	"ngh": "ngờ", "p": "pờ", "ph": "phờ", "q": "cu",
	"r": "rờ", "s": "sờ", "t": "tờ", "th": "thờ",
	"tr": "trờ", "v": "vờ", "x": "xờ", "ch": "chờ",
	"nh": "nhờ", "kh": "khờ", "gi": "di",
	"q-qu": "quờ", "qu": "quờ",
}

// Reading returns the spoken form of a card's sound. Sounds without a
// special reading are spoken as written.
func Reading(sound string) string {
	if r, ok := readings[strings.ToLower(sound)]; ok {
		return r
	}
	return sound
}
