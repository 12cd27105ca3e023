package lexicon

import "github.com/shkomig/Engineered-prompt/internal/domain"

// DefaultCategories returns the built-in Hebrew-first category table.
// Declaration order (visual, technical, textual) is the tie-break order.
func DefaultCategories() *CategoryLexicon {
	return &CategoryLexicon{Entries: []CategoryEntry{
		{
			Category: domain.CategoryVisual,
			Weight:   0.4,
			Keywords: []string{
				"תמונה", "תמונות", "צור תמונה", "ציור", "אילוסטרציה",
				"גרפיקה", "וידאו", "סרטון", "אנימציה", "דיאגרמה",
				"לוגו", "עיצוב גרפי", "פוסטר", "באנר", "אייקון",
				"render", "3d", "art", "image", "picture", "visual",
				"דמיון חזותי", "ויזואליזציה", "מפה", "אינפוגרפיקה",
			},
		},
		{
			Category: domain.CategoryTechnical,
			Weight:   0.4,
			Keywords: []string{
				"קוד", "פונקציה", "תכנת", "פייתון", "python", "javascript",
				"תוכנית", "סקריפט", "אלגוריתם", "api", "database",
				"sql", "react", "django", "code", "function", "class",
				"debug", "באג", "שגיאה בקוד", "optimization", "רפקטור",
				"לולאה", "תנאי", "משתנה", "מחלקה", "אובייקט", "json",
				"html", "css", "nodejs", "git", "regex", "formula",
				"נוסחה", "חישוב מתמטי", "latex", "equation", "מתמטיקה",
			},
		},
		{
			Category: domain.CategoryTextual,
			Weight:   0.3,
			Keywords: []string{
				"כתוב", "מכתב", "אימייל", "מייל", "סיכום", "מאמר",
				"דוח", "הצעה", "תיאור", "סיפור", "תוכן", "טקסט",
				"הודעה", "פוסט", "בלוג", "רשימה", "מסמך", "נייר עמדה",
				"email", "letter", "document", "write", "compose",
				"תרגם", "הסבר", "סכם", "נסח", "ערוך", "תענה",
				"שאלה", "תשובה", "מדריך", "הוראות", "faq", "תיעוד",
				"פרזנטציה", "מצגת", "נאום", "דברי פתיחה",
			},
		},
	}}
}

// DefaultStyle returns the built-in style indicator tables.
func DefaultStyle() *StyleLexicon {
	return &StyleLexicon{
		Formal: []string{"רשמי", "פורמלי", "מכובד", "נימוס", "רציני", "מקצועי"},
		Casual: []string{"חופשי", "קליל", "לא רשמי", "חברי", "נינוח", "משעשע"},
		Tones: []ToneEntry{
			{Tone: domain.ToneProfessional, Indicators: []string{"מקצועי", "עסקי", "פורמלי"}},
			{Tone: domain.ToneFriendly, Indicators: []string{"ידידותי", "חברי", "חם"}},
			{Tone: domain.ToneUrgent, Indicators: []string{"דחוף", "מיידי", "חשוב"}},
			{Tone: domain.TonePersuasive, Indicators: []string{"משכנע", "שכנוע", "להניע"}},
			{Tone: domain.ToneInformative, Indicators: []string{"אינפורמטיבי", "מידע", "להסביר"}},
		},
		Lengths: []LengthEntry{
			{Length: domain.LengthConcise, Indicators: []string{"קצר", "תמציתי", "קצרצר", "במשפט", "1-2"}},
			{Length: domain.LengthModerate, Indicators: []string{"בינוני", "סביר", "רגיל", "3-5"}},
			{Length: domain.LengthExtensive, Indicators: []string{"ארוך", "מפורט", "מקיף", "מעמיק", "1000"}},
		},
	}
}
