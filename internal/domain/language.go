package domain

import "strings"

// Language is a programming language a poem may be written in.
type Language string

// Supported languages, in their canonical order.
const (
	LanguageAda        Language = "ada"
	LanguageAlgol68    Language = "algol68"
	LanguageAPL        Language = "apl"
	LanguageBefunge    Language = "befunge"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageGo         Language = "go"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
	LanguageKotlin     Language = "kotlin"
	LanguageLisp       Language = "lisp"
	LanguageObjectiveC Language = "objectivec"
	LanguagePython     Language = "python"
	LanguageRuby       Language = "ruby"
	LanguageSQL        Language = "sql"
	LanguageSwift      Language = "swift"
)

var languages = []Language{
	LanguageAda, LanguageAlgol68, LanguageAPL, LanguageBefunge,
	LanguageC, LanguageCPP, LanguageGo, LanguageJava,
	LanguageJavaScript, LanguageKotlin, LanguageLisp, LanguageObjectiveC,
	LanguagePython, LanguageRuby, LanguageSQL, LanguageSwift,
}

var languageDisplayNames = map[Language]string{
	LanguageAda:        "Ada",
	LanguageAlgol68:    "ALGOL 68",
	LanguageAPL:        "APL",
	LanguageBefunge:    "Befunge",
	LanguageC:          "C",
	LanguageCPP:        "C++",
	LanguageGo:         "Go",
	LanguageJava:       "Java",
	LanguageJavaScript: "JavaScript",
	LanguageKotlin:     "Kotlin",
	LanguageLisp:       "Lisp",
	LanguageObjectiveC: "Objective-C",
	LanguagePython:     "Python",
	LanguageRuby:       "Ruby",
	LanguageSQL:        "SQL",
	LanguageSwift:      "Swift",
}

// Languages returns every supported language in canonical order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage returns the Language named by s, or false if s is not supported.
func ParseLanguage(s string) (Language, bool) {
	for _, l := range languages {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// LanguageNames joins all language names with the given separator.
func LanguageNames(sep string) string {
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = string(l)
	}
	return strings.Join(names, sep)
}

// DisplayName returns the human-facing name of the language.
func (l Language) DisplayName() string {
	if name, ok := languageDisplayNames[l]; ok {
		return name
	}
	return string(l)
}
