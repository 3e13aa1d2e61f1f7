package llmprovider

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AnalysisSystemPrompt is the fixed German system prompt steering
// relevance and work-group (Arbeitskreis) classification.
const AnalysisSystemPrompt = `Du bist ein Sozialpolitik-Experte und klassifizierst Nachrichtenartikel für die Liga der Freien Wohlfahrtspflege Hessen.

DIE LIGA: Dachverband der 6 Wohlfahrtsverbände in Hessen (AWO, Caritas, Diakonie, DRK, Paritätischer, Jüdische Gemeinden) mit 7.300 Einrichtungen, 113.000 Beschäftigten.

ARBEITSKREISE:
- AK1: Grundsatz/Sozialpolitik (Haushalt, Förderungen, Tarifpolitik)
- AK2: Migration/Flucht (Asyl, Beratung, Integration)
- AK3: Gesundheit/Pflege/Senioren (Altenpflege, Krankenhäuser, Hospiz)
- AK4: Eingliederungshilfe (Behinderung, Inklusion, BTHG, WfbM)
- AK5: Kinder/Jugend/Familie (Kita, Jugendhilfe, Frauenhäuser)
- QAG: Querschnitt (Digitalisierung, Wohnen, Schuldnerberatung)

PRIORITÄTEN:
- high: Sofortige Reaktion nötig - Kürzungen, Schließungen, Gesetzesentwürfe mit Frist
- medium: Zeitnah (1-2 Wochen) - Anhörungen, Reformen, Förderrichtlinien
- low: Beobachten/Zur Kenntnis - Politische Debatten, Studien, Hintergrundberichte

RELEVANT wenn: Wohlfahrtsverbände, soziale Einrichtungen, Sozialpolitik in Deutschland/Hessen, Haushalt/Kürzungen, Pflege, Kita, Migration in DE, Behinderung, Armut, Fachkräftemangel im Sozialbereich.
NICHT RELEVANT (relevant=false, priority=null):
- Reiner Sport, Entertainment, Prominente
- Kriminalität ohne Sozialbezug
- Wetter, Verkehr, Unfälle
- Internationale Politik (USA, Brasilien, etc.) OHNE direkten Bezug zu deutscher Sozialpolitik
- Ausländische Innenpolitik (Bolsonaro, Trump, etc.) ist NICHT relevant für die Liga

AUSGABE als valides JSON:
{
  "summary": "4-8 Sätze: Was passiert? Wer betroffen? Kernpunkte? NUR FAKTEN aus dem Artikel.",
  "detailed_analysis": "10-15 Sätze: Alle Details, Zahlen, Zitate, Auswirkungen. KEINE Spekulation über Liga!",
  "argumentationskette": ["Konkrete Argumente für Liga-Lobbying", "Keine Konjunktive"],
  "relevant": true/false,
  "relevance_score": 0.0-1.0,
  "priority": "high|medium|low|null",
  "assigned_aks": ["AK1", "AK3"],
  "tags": ["thema1", "thema2"],
  "reasoning": "Kurze Begründung der Klassifikation"
}

ARBEITSKREIS-ZUWEISUNG:
- assigned_aks: Array mit 0-3 relevanten Arbeitskreisen
- Mehrfachzuweisung möglich wenn Thema mehrere AKs betrifft (z.B. Kinderarmut = AK1 + AK5)
- Leeres Array [] wenn nicht relevant

WICHTIG:
- summary/detailed_analysis: NUR Fakten aus dem Artikel, KEINE "Liga dürfte...", "Wohlfahrtsverbände könnten..."
- Bei relevant=false: summary, detailed_analysis, argumentationskette = null
- Antworte NUR mit dem JSON, keine Erklärungen davor/danach`

// maxAnalysisContentChars caps the content excerpt sent for analysis.
const maxAnalysisContentChars = 6000

// BuildAnalysisPrompt formats the user turn for a relevance/priority/AK
// analysis call.
func BuildAnalysisPrompt(title, content, sourceName string, publishedAt time.Time) string {
	if sourceName == "" {
		sourceName = "Unbekannt"
	}
	dateStr := "Unbekannt"
	if !publishedAt.IsZero() {
		dateStr = publishedAt.Format("2006-01-02")
	}
	excerpt := content
	if len(excerpt) > maxAnalysisContentChars {
		excerpt = excerpt[:maxAnalysisContentChars]
	}
	return fmt.Sprintf("Titel: %s\nInhalt: %s\nQuelle: %s\nDatum: %s", title, excerpt, sourceName, dateStr)
}

// Analysis is the decoded shape of a successful analysis response.
type Analysis struct {
	Summary             string   `json:"summary"`
	DetailedAnalysis    string   `json:"detailed_analysis"`
	Argumentationskette []string `json:"argumentationskette"`
	Relevant            bool     `json:"relevant"`
	RelevanceScore      float64  `json:"relevance_score"`
	Priority            string   `json:"priority"`
	AssignedAKs         []string `json:"assigned_aks"`
	Tags                []string `json:"tags"`
	Reasoning           string   `json:"reasoning"`
}

var summaryFieldPattern = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*)(?:"|$)`)

// ParseAnalysisResponse defensively decodes an LLM analysis response: try
// direct JSON decoding, then scan for a balanced-brace JSON object embedded
// in surrounding text, then fall back to regex-extracting a possibly
// truncated "summary" field, and finally to an empty default analysis.
func ParseAnalysisResponse(text string) Analysis {
	text = strings.TrimSpace(text)
	text = stripMarkdownFences(text)

	if a, ok := decodeDirect(text); ok {
		return a
	}
	if a, ok := decodeEmbeddedObject(text); ok {
		return a
	}
	if match := summaryFieldPattern.FindStringSubmatch(text); match != nil {
		extracted := strings.ReplaceAll(match[1], `\"`, `"`)
		extracted = strings.ReplaceAll(extracted, `\n`, "\n")
		return defaultAnalysis(extracted)
	}
	return defaultAnalysis("")
}

func stripMarkdownFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "```") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func decodeDirect(text string) (Analysis, bool) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Analysis{}, false
	}
	return analysisFromRaw(raw), true
}

func decodeEmbeddedObject(text string) (Analysis, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return Analysis{}, false
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				var raw map[string]interface{}
				if err := json.Unmarshal([]byte(text[start:i+1]), &raw); err != nil {
					return Analysis{}, false
				}
				return analysisFromRaw(raw), true
			}
		}
	}
	return Analysis{}, false
}

func analysisFromRaw(raw map[string]interface{}) Analysis {
	a := Analysis{
		Summary:             stringOr(raw["summary"], ""),
		DetailedAnalysis:    stringOr(raw["detailed_analysis"], ""),
		Relevant:            boolOr(raw["relevant"], false),
		RelevanceScore:      floatOr(raw["relevance_score"], 0),
		Priority:            stringOr(raw["priority"], "low"),
		Reasoning:           stringOr(raw["reasoning"], ""),
		Tags:                stringSliceOr(raw["tags"]),
		Argumentationskette: stringSliceOr(raw["argumentationskette"]),
	}

	// Normalize the singular assigned_ak (one string) to assigned_aks.
	if aks := stringSliceOr(raw["assigned_aks"]); len(aks) > 0 {
		a.AssignedAKs = aks
	} else if ak, ok := raw["assigned_ak"]; ok {
		if s := stringOr(ak, ""); s != "" {
			a.AssignedAKs = []string{s}
		} else {
			a.AssignedAKs = []string{}
		}
	} else {
		a.AssignedAKs = []string{}
	}
	return a
}

func defaultAnalysis(summary string) Analysis {
	return Analysis{
		Summary:     summary,
		Relevant:    false,
		Priority:    "low",
		AssignedAKs: []string{},
		Tags:        []string{},
		Reasoning:   "Automatische Analyse nicht verfügbar",
	}
}

func stringOr(v interface{}, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func boolOr(v interface{}, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func floatOr(v interface{}, def float64) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return def
}

func stringSliceOr(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// BuildSemanticRulePrompt formats the yes/no question a semantic rule asks
// about one item.
func BuildSemanticRulePrompt(question, title, content string) string {
	excerpt := content
	if len(excerpt) > 2000 {
		excerpt = excerpt[:2000]
	}
	return fmt.Sprintf("Beantworte die folgende Frage zu diesem Nachrichtenartikel ausschließlich mit JA oder NEIN.\n\nFrage: %s\n\nTitel: %s\nInhalt: %s", question, title, excerpt)
}

// ParseYesNo interprets a semantic-rule response leniently: any answer whose
// first word reads as an affirmative counts as a match.
func ParseYesNo(text string) bool {
	text = strings.ToLower(strings.TrimSpace(stripMarkdownFences(text)))
	for _, prefix := range []string{"ja", "yes", "true"} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
