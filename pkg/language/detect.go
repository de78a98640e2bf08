// Package language guesses the programming language of a code snippet.
package language

import "strings"

const Default = "javascript"

type rule struct {
	language string
	match    func(code string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(code string) bool {
		for _, s := range subs {
			if strings.Contains(code, s) {
				return true
			}
		}
		return false
	}
}

// Rules are checked in order; the first hit wins.
var rules = []rule{
	{"python", containsAny("def ", "import ", "print(")},
	{"java", containsAny("public class", "System.out")},
	{"cpp", containsAny("#include", "cout <<")},
	{"go", containsAny("func ", "package ")},
	{"typescript", func(code string) bool {
		return strings.Contains(code, "interface ") && strings.Contains(code, ": ")
	}},
}

// Detect returns a best-effort language tag for code, falling back to
// Default when nothing matches.
func Detect(code string) string {
	for _, r := range rules {
		if r.match(code) {
			return r.language
		}
	}
	return Default
}

// Supported lists the tags Detect can return.
func Supported() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.language)
	}
	return append(out, Default)
}
