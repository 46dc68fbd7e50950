package analyzer

import (
	"context"
	"strings"

	"mygrow-go/internal/model"
)

// themeRule maps a theme label to the vocabulary that triggers it.
// Rules are evaluated in order so results are deterministic.
type themeRule struct {
	theme    string
	keywords []string
}

var themeRules = []themeRule{
	{"Gratitude - noticing God's daily gifts", []string{"thank", "grateful", "appreciate", "blessed", "thankful", "gratitude"}},
	{"Peace - finding calm in Christ", []string{"peace", "calm", "still", "quiet", "serene", "tranquil", "anxious", "worried"}},
	{"Love - experiencing divine affection", []string{"love", "care", "compassion", "affection", "cherish", "relationship"}},
	{"Hope - anchoring in God's promises", []string{"hope", "future", "expect", "anticipate", "tomorrow"}},
	{"Faith - learning to trust God's character", []string{"faith", "believe", "trust", "confidence", "rely", "doubt"}},
	{"Guidance - seeking God's direction", []string{"guidance", "direction", "path", "wisdom", "counsel", "lost"}},
	{"Strength - finding power in weakness", []string{"strength", "strong", "power", "courage", "endurance", "weak"}},
	{"Forgiveness - receiving and extending grace", []string{"forgive", "mercy", "pardon", "grace", "absolve", "sorry"}},
	{"Prayer - cultivating conversation with God", []string{"pray", "prayer", "ask", "petition", "intercede", "talk to god"}},
	{"Purpose - discovering God's calling", []string{"purpose", "calling", "meaning", "mission", "vocation"}},
	{"Growth - maturing in spiritual understanding", []string{"grow", "change", "improve", "progress", "develop"}},
	{"Reflection - thoughtfully processing life", []string{"reflect", "think", "ponder", "consider", "meditate"}},
	{"Rest - ceasing from striving", []string{"rest", "resting", "sabbath", "renew", "refresh"}},
	{"Identity - understanding who I am in Christ", []string{"identity", "who am i", "self", "worth", "value"}},
	{"Transformation - becoming a new creation", []string{"transform", "new creation", "born again", "renewal"}},
}

var defaultThemes = []string{
	"Spiritual Reflection - considering life's deeper meaning",
	"Personal Growth - developing Christ-like character",
	"Seeking God - longing for deeper connection",
}

// insightRule maps a text fragment to a key insight. First match wins.
type insightRule struct {
	pattern string
	insight string
}

var insightRules = []insightRule{
	{"i feel", "Your honest expression of feelings creates space for God to meet you where you are. This vulnerability is the fertile ground where spiritual growth takes root."},
	{"i need", "Recognizing your needs is the first step toward receiving God's provision. His supply often comes through the very acknowledgment of our lack."},
	{"i want", "Desire can be a compass pointing toward what God has placed in your heart. Pay attention to these holy longings."},
	{"i pray", "Prayer connects your heart with God's heart, aligning your desires with His will. This communion transforms both the pray-er and the prayer."},
	{"i hope", "Hope anchors the soul in God's promises, even when circumstances are uncertain. This is not wishful thinking but confident expectation in His character."},
	{"thank", "Gratitude shifts focus from what's missing to what's already been given. This practice rewires the brain to notice God's daily provisions."},
	{"help", "Acknowledging need for help opens the door to God's grace and community support. Our weakness becomes the canvas for His strength."},
	{"try", "Your willingness to try shows faith in action, believing God can work through your efforts. This is the partnership of divine power and human obedience."},
}

const defaultInsight = "Your reflections reveal a heart that is open and seeking spiritual growth. This posture of receptivity positions you to receive what God wants to reveal and develop in you."

const maxThemes = 3

// KeywordAnalyzer produces an analysis from keyword pattern matching
// alone, with no external calls. It is both the offline default and the
// fallback shape that a remote analyzer degrades to.
type KeywordAnalyzer struct{}

var _ Analyzer = (*KeywordAnalyzer)(nil)

func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze never fails; it always returns a usable, degraded-marked result.
func (a *KeywordAnalyzer) Analyze(_ context.Context, journalText string) (model.AnalysisResult, error) {
	lower := strings.ToLower(journalText)

	var themes []string
	for _, rule := range themeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				themes = append(themes, rule.theme)
				break
			}
		}
	}
	if len(themes) == 0 {
		themes = append(themes, defaultThemes...)
	}
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}

	insight := defaultInsight
	for _, rule := range insightRules {
		if strings.Contains(lower, rule.pattern) {
			insight = rule.insight
			break
		}
	}

	return model.AnalysisResult{
		PrimaryThemes: themes,
		EmotionalState: []string{
			"Reflective - thoughtfully processing life experiences",
			"Seeking - looking for spiritual understanding",
		},
		CoreQuestion: "What deeper spiritual patterns is God revealing to me through these reflections, and how are they shaping my journey of transformation?",
		KeyInsight:   insight,
		BiblePassages: []model.Passage{
			{
				Reference: "Matthew 6:33",
				Text:      "But seek first the kingdom of God and his righteousness, and all these things will be added to you.",
				WhyItFits: "Your reflections demonstrate a heart posture that aligns with this kingdom priority. When we genuinely seek God's ways first, our perspective shifts from scarcity to provision, from anxiety to trust.",
			},
		},
		PracticalSteps: []string{
			"Track the recurring themes in your last 3-5 journal entries and notice what patterns God is emphasizing in this season.",
			"Identify one specific, small action you can take this week that aligns with the primary spiritual theme emerging in your reflections.",
			"Share one key insight from your journaling with a trusted spiritual friend to externalize internal processing and bring additional clarity.",
		},
		PrayerStarter: "Lord, as I reflect on these experiences and insights, help me to see with spiritual eyes what You are doing beneath the surface of my life. Teach me to recognize Your patterns, to cooperate with Your work, and to rest in Your timing.",
		Encouragement: "Your commitment to reflective journaling creates a sacred space for God to speak and for you to listen. Keep creating this space; it is bearing fruit even when you can't immediately see it.",
		Error:         "keyword analysis: external analyzer not configured",
	}, nil
}
