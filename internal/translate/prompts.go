package translate

import "fmt"

// languageNames maps ISO 639-1 codes to display names used in prompts.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"ur": "Urdu",
}

// LanguageName returns the display name for a language code.
// Unknown codes are returned as-is.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// GetTranslatePrompt returns the system prompt for plain text translation.
func GetTranslatePrompt(sourceLang, targetLang string) string {
	return fmt.Sprintf(`You are an expert translator. Translate news text into the target language.

<context>
<source_language>%s</source_language>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning and tone
4. Keep proper nouns, place names, and brand names unchanged
5. NEVER translate URLs
6. NO explanations, NO notes, NO markdown formatting
7. NO leading or trailing newlines
</instructions>`, LanguageName(sourceLang), LanguageName(targetLang))
}
